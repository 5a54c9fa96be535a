package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
)

// ContactRepository handles contact persistence
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new contact repository
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Replace clears the device's contacts and bulk-inserts the new set,
// without a wrapping transaction.
func (r *ContactRepository) Replace(ctx context.Context, deviceID string, contacts []models.Contact) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE device_id = $1`, deviceID); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	if len(contacts) == 0 {
		return nil
	}

	rows := make([][]any, len(contacts))
	for i, c := range contacts {
		rows[i] = []any{deviceID, c.DisplayName, c.Number}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"contacts"},
		[]string{"device_id", "display_name", "number"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert contacts: %w", err)
	}
	return nil
}

// List returns the device's contacts in insertion order.
func (r *ContactRepository) List(ctx context.Context, deviceID string) ([]models.Contact, error) {
	query := `
		SELECT display_name, number
		FROM contacts
		WHERE device_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.DisplayName, &c.Number); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
