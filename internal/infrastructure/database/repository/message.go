package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
)

// MessageRepository handles message persistence
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Replace clears the device's messages and bulk-inserts the new set. The
// two steps run without a wrapping transaction, so a concurrent reader may
// observe an empty or partial collection mid-replace.
func (r *MessageRepository) Replace(ctx context.Context, deviceID string, messages []models.Message) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE device_id = $1`, deviceID); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}

	if len(messages) == 0 {
		return nil
	}

	rows := make([][]any, len(messages))
	for i, m := range messages {
		rows[i] = []any{deviceID, m.Address, m.Date, string(m.Direction), m.Body, m.IsSuspicious, string(m.Category), m.ContactName}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"messages"},
		[]string{"device_id", "address", "date", "direction", "body", "is_suspicious", "category", "contact_name"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert messages: %w", err)
	}
	return nil
}

// List returns the device's messages in insertion order, optionally
// filtered to suspicious ones.
func (r *MessageRepository) List(ctx context.Context, deviceID string, suspiciousOnly bool) ([]models.Message, error) {
	query := `
		SELECT address, date, direction, body, is_suspicious, category, contact_name
		FROM messages
		WHERE device_id = $1`
	if suspiciousOnly {
		query += ` AND is_suspicious`
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// FindByBody returns the device's messages whose body contains term,
// case-insensitively.
func (r *MessageRepository) FindByBody(ctx context.Context, deviceID, term string) ([]models.Message, error) {
	query := `
		SELECT address, date, direction, body, is_suspicious, category, contact_name
		FROM messages
		WHERE device_id = $1 AND body ILIKE '%' || $2 || '%'
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, deviceID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// Volume returns per-address message counts for the device. Ordering is
// left to the caller.
func (r *MessageRepository) Volume(ctx context.Context, deviceID string) ([]models.MessageVolume, error) {
	query := `
		SELECT address, COUNT(*)
		FROM messages
		WHERE device_id = $1
		GROUP BY address`

	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate message volume: %w", err)
	}
	defer rows.Close()

	var groups []models.MessageVolume
	for rows.Next() {
		var g models.MessageVolume
		if err := rows.Scan(&g.Address, &g.Count); err != nil {
			return nil, fmt.Errorf("failed to scan volume group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Timeline buckets the device's messages by calendar day, counting totals
// and suspicious messages per day. Dates are stored as
// "YYYY-MM-DD HH:mm:ss", so the day key is the first ten characters.
// Messages whose date failed normalization are excluded. from and to, when
// non-empty, bound the day key inclusively.
func (r *MessageRepository) Timeline(ctx context.Context, deviceID, from, to string) ([]models.TimelineBucket, error) {
	query := `
		SELECT substring(date for 10) AS day,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE is_suspicious)
		FROM messages
		WHERE device_id = $1
		  AND date ~ '^\d{4}-\d{2}-\d{2}'
		  AND ($2 = '' OR substring(date for 10) >= $2)
		  AND ($3 = '' OR substring(date for 10) <= $3)
		GROUP BY day`

	rows, err := r.pool.Query(ctx, query, deviceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate timeline: %w", err)
	}
	defer rows.Close()

	var buckets []models.TimelineBucket
	for rows.Next() {
		var b models.TimelineBucket
		if err := rows.Scan(&b.Date, &b.TotalMessages, &b.SuspiciousMessages); err != nil {
			return nil, fmt.Errorf("failed to scan timeline bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func scanMessages(rows pgx.Rows) ([]models.Message, error) {
	var messages []models.Message
	for rows.Next() {
		var m models.Message
		var direction, category string
		if err := rows.Scan(&m.Address, &m.Date, &direction, &m.Body, &m.IsSuspicious, &category, &m.ContactName); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Direction = models.MessageDirection(direction)
		m.Category = models.RiskCategory(category)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
