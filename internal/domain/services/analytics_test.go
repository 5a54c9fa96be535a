package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

type stubAnalyticsStore struct {
	volume      []models.MessageVolume
	timeline    []models.TimelineBucket
	callsByNum  map[string][]models.CallRecord
	failNumbers map[string]bool
	volumeErr   error
}

func (s *stubAnalyticsStore) MessageVolume(ctx context.Context, deviceID string) ([]models.MessageVolume, error) {
	return s.volume, s.volumeErr
}

func (s *stubAnalyticsStore) MessageTimeline(ctx context.Context, deviceID, from, to string) ([]models.TimelineBucket, error) {
	return s.timeline, nil
}

func (s *stubAnalyticsStore) CallRecordsByNumber(ctx context.Context, deviceID, number string) ([]models.CallRecord, error) {
	if s.failNumbers[number] {
		return nil, errors.New("lookup failed")
	}
	return s.callsByNum[number], nil
}

func newTestAnalytics(store AnalyticsStore) *AnalyticsService {
	return NewAnalyticsService(store, nil, 10, time.Minute, logger.NewDefault())
}

func TestVolumeSortedDescending(t *testing.T) {
	store := &stubAnalyticsStore{
		volume: []models.MessageVolume{
			{Address: "+1000", Count: 2},
			{Address: "+3000", Count: 9},
			{Address: "+2000", Count: 2},
		},
	}

	got, err := newTestAnalytics(store).Volume(context.Background(), "dev1")
	if err != nil {
		t.Fatalf("Volume() error = %v", err)
	}

	want := []models.MessageVolume{
		{Address: "+3000", Count: 9},
		{Address: "+1000", Count: 2},
		{Address: "+2000", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Volume() = %v, want %v", got, want)
	}
}

func TestVolumeStoreFailure(t *testing.T) {
	store := &stubAnalyticsStore{volumeErr: errors.New("connection reset")}

	_, err := newTestAnalytics(store).Volume(context.Background(), "dev1")
	var collab *CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("Volume() error = %v, want CollaboratorError", err)
	}
}

func TestTimelineSortedAscending(t *testing.T) {
	store := &stubAnalyticsStore{
		timeline: []models.TimelineBucket{
			{Date: "2024-03-02", TotalMessages: 1, SuspiciousMessages: 0},
			{Date: "2024-03-01", TotalMessages: 2, SuspiciousMessages: 1},
		},
	}

	got, err := newTestAnalytics(store).Timeline(context.Background(), "dev1", "", "")
	if err != nil {
		t.Fatalf("Timeline() error = %v", err)
	}

	want := []models.TimelineBucket{
		{Date: "2024-03-01", TotalMessages: 2, SuspiciousMessages: 1},
		{Date: "2024-03-02", TotalMessages: 1, SuspiciousMessages: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Timeline() = %v, want %v", got, want)
	}
}

func TestCorrelatePartialFailure(t *testing.T) {
	store := &stubAnalyticsStore{
		callsByNum:  make(map[string][]models.CallRecord),
		failNumbers: map[string]bool{"+5": true},
	}
	for i := 0; i < 10; i++ {
		number := fmt.Sprintf("+%d", i)
		store.volume = append(store.volume, models.MessageVolume{Address: number, Count: int64(100 - i)})
		store.callsByNum[number] = []models.CallRecord{{Number: number, Direction: models.CallDirectionIncoming}}
	}

	got, err := newTestAnalytics(store).Correlate(context.Background(), "dev1")
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("Correlate() returned %d entries, want 10", len(got))
	}

	for _, entry := range got {
		if entry.CallLogs == nil {
			t.Errorf("entry %s has nil CallLogs, want empty slice", entry.Number)
		}
		if entry.Number == "+5" {
			if len(entry.CallLogs) != 0 {
				t.Errorf("failed lookup for %s should yield empty call logs, got %d", entry.Number, len(entry.CallLogs))
			}
		} else if len(entry.CallLogs) != 1 {
			t.Errorf("entry %s has %d call logs, want 1", entry.Number, len(entry.CallLogs))
		}
	}
}

func TestCorrelateLimitsToTopContacts(t *testing.T) {
	store := &stubAnalyticsStore{callsByNum: make(map[string][]models.CallRecord)}
	for i := 0; i < 15; i++ {
		store.volume = append(store.volume, models.MessageVolume{Address: fmt.Sprintf("+%d", i), Count: int64(100 - i)})
	}

	got, err := newTestAnalytics(store).Correlate(context.Background(), "dev1")
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	if len(got) != 10 {
		t.Errorf("Correlate() returned %d entries, want 10", len(got))
	}
	if got[0].Number != "+0" || got[0].SMSCount != 100 {
		t.Errorf("top entry = %+v, want the highest-volume address first", got[0])
	}
}
