package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// AnalyticsStore exposes the grouped reads the analytics views are built
// from. Group ordering is unspecified at the store level; this service owns
// all sorting.
type AnalyticsStore interface {
	MessageVolume(ctx context.Context, deviceID string) ([]models.MessageVolume, error)
	MessageTimeline(ctx context.Context, deviceID, from, to string) ([]models.TimelineBucket, error)
	CallRecordsByNumber(ctx context.Context, deviceID, number string) ([]models.CallRecord, error)
}

// ViewCache stores rendered analytics views keyed per device.
type ViewCache interface {
	GetView(ctx context.Context, key string) ([]byte, bool, error)
	SetView(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// AnalyticsService computes per-contact volume, day-bucketed timelines, and
// SMS/call correlation for a device. Views are cached until the next ingest
// invalidates them. The cache is optional; a nil cache disables it.
type AnalyticsService struct {
	store       AnalyticsStore
	cache       ViewCache
	topContacts int
	cacheTTL    time.Duration
	logger      *logger.Logger
}

// NewAnalyticsService creates a new AnalyticsService. topContacts bounds the
// correlation view; values below 1 fall back to 10.
func NewAnalyticsService(store AnalyticsStore, cache ViewCache, topContacts int, cacheTTL time.Duration, log *logger.Logger) *AnalyticsService {
	if topContacts < 1 {
		topContacts = 10
	}
	return &AnalyticsService{
		store:       store,
		cache:       cache,
		topContacts: topContacts,
		cacheTTL:    cacheTTL,
		logger:      log.WithComponent("analytics"),
	}
}

// Volume returns per-address message counts, sorted descending by count.
// Ties order by address for stable output.
func (s *AnalyticsService) Volume(ctx context.Context, deviceID string) ([]models.MessageVolume, error) {
	key := viewKey(deviceID, "volume")
	var cached []models.MessageVolume
	if s.readView(ctx, key, &cached) {
		return cached, nil
	}

	groups, err := s.store.MessageVolume(ctx, deviceID)
	if err != nil {
		return nil, collaboratorErr("volume query", err)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Address < groups[j].Address
	})

	s.writeView(ctx, key, groups)
	return groups, nil
}

// Timeline returns per-day message totals and suspicious counts within the
// optional from/to date range (inclusive, "YYYY-MM-DD"), sorted ascending
// by date.
func (s *AnalyticsService) Timeline(ctx context.Context, deviceID, from, to string) ([]models.TimelineBucket, error) {
	key := viewKey(deviceID, fmt.Sprintf("timeline:%s:%s", from, to))
	var cached []models.TimelineBucket
	if s.readView(ctx, key, &cached) {
		return cached, nil
	}

	buckets, err := s.store.MessageTimeline(ctx, deviceID, from, to)
	if err != nil {
		return nil, collaboratorErr("timeline query", err)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})

	s.writeView(ctx, key, buckets)
	return buckets, nil
}

// Correlate joins the top-N addresses by message volume with their call
// history. Per-number lookups run concurrently; a failed lookup degrades to
// an empty call log for that number and never drops the entry or aborts
// the rest.
func (s *AnalyticsService) Correlate(ctx context.Context, deviceID string) ([]models.NumberCorrelation, error) {
	key := viewKey(deviceID, "correlation")
	var cached []models.NumberCorrelation
	if s.readView(ctx, key, &cached) {
		return cached, nil
	}

	volume, err := s.Volume(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if len(volume) > s.topContacts {
		volume = volume[:s.topContacts]
	}

	results := make([]models.NumberCorrelation, len(volume))
	var wg sync.WaitGroup
	for i, group := range volume {
		wg.Add(1)
		go func(i int, group models.MessageVolume) {
			defer wg.Done()
			entry := models.NumberCorrelation{
				Number:   group.Address,
				SMSCount: group.Count,
				CallLogs: []models.CallRecord{},
			}
			records, err := s.store.CallRecordsByNumber(ctx, deviceID, group.Address)
			if err != nil {
				s.logger.Warn().Err(err).Str("number", group.Address).Msg("call log lookup failed, returning empty call history")
			} else if records != nil {
				entry.CallLogs = records
			}
			results[i] = entry
		}(i, group)
	}
	wg.Wait()

	s.writeView(ctx, key, results)
	return results, nil
}

func (s *AnalyticsService) readView(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	data, found, err := s.cache.GetView(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("view cache read failed")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding malformed cached view")
		return false
	}
	return true
}

func (s *AnalyticsService) writeView(ctx context.Context, key string, view any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.cache.SetView(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("view cache write failed")
	}
}

func viewKey(deviceID, view string) string {
	return fmt.Sprintf("views:%s:%s", deviceID, view)
}
