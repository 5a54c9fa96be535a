package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
)

// CallRecordRepository handles call log persistence
type CallRecordRepository struct {
	pool *pgxpool.Pool
}

// NewCallRecordRepository creates a new call record repository
func NewCallRecordRepository(pool *pgxpool.Pool) *CallRecordRepository {
	return &CallRecordRepository{pool: pool}
}

// Replace clears the device's call records and bulk-inserts the new set,
// without a wrapping transaction.
func (r *CallRecordRepository) Replace(ctx context.Context, deviceID string, records []models.CallRecord) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM call_records WHERE device_id = $1`, deviceID); err != nil {
		return fmt.Errorf("failed to clear call records: %w", err)
	}

	if len(records) == 0 {
		return nil
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{deviceID, rec.Number, rec.Date, rec.Duration, string(rec.Direction)}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"call_records"},
		[]string{"device_id", "number", "date", "duration", "direction"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert call records: %w", err)
	}
	return nil
}

// List returns the device's call records in insertion order.
func (r *CallRecordRepository) List(ctx context.Context, deviceID string) ([]models.CallRecord, error) {
	query := `
		SELECT number, date, duration, direction
		FROM call_records
		WHERE device_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list call records: %w", err)
	}
	defer rows.Close()

	return scanCallRecords(rows)
}

// ByNumber returns the device's call records for one number.
func (r *CallRecordRepository) ByNumber(ctx context.Context, deviceID, number string) ([]models.CallRecord, error) {
	query := `
		SELECT number, date, duration, direction
		FROM call_records
		WHERE device_id = $1 AND number = $2
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, deviceID, number)
	if err != nil {
		return nil, fmt.Errorf("failed to find call records by number: %w", err)
	}
	defer rows.Close()

	return scanCallRecords(rows)
}

func scanCallRecords(rows pgx.Rows) ([]models.CallRecord, error) {
	var records []models.CallRecord
	for rows.Next() {
		var rec models.CallRecord
		var direction string
		if err := rows.Scan(&rec.Number, &rec.Date, &rec.Duration, &direction); err != nil {
			return nil, fmt.Errorf("failed to scan call record: %w", err)
		}
		rec.Direction = models.CallDirection(direction)
		records = append(records, rec)
	}
	return records, rows.Err()
}
