package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
)

// Repositories bundles the per-kind repositories and adapts them to the
// store interfaces the domain services consume. All tables are namespaced
// by device_id, so one database serves any number of triaged devices.
type Repositories struct {
	Messages    *MessageRepository
	CallRecords *CallRecordRepository
	Contacts    *ContactRepository

	pool *pgxpool.Pool
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Messages:    NewMessageRepository(pool),
		CallRecords: NewCallRecordRepository(pool),
		Contacts:    NewContactRepository(pool),
		pool:        pool,
	}
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Record dates are stored as normalized strings, not timestamps, because
// unparsable source values pass through verbatim.
func (r *Repositories) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			id            BIGSERIAL PRIMARY KEY,
			device_id     TEXT NOT NULL,
			address       TEXT NOT NULL DEFAULT '',
			date          TEXT NOT NULL DEFAULT '',
			direction     TEXT NOT NULL DEFAULT '',
			body          TEXT NOT NULL DEFAULT '',
			is_suspicious BOOLEAN NOT NULL DEFAULT FALSE,
			category      TEXT NOT NULL DEFAULT '',
			contact_name  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_device ON messages (device_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_device_address ON messages (device_id, address)`,
		`CREATE TABLE IF NOT EXISTS call_records (
			id        BIGSERIAL PRIMARY KEY,
			device_id TEXT NOT NULL,
			number    TEXT NOT NULL DEFAULT '',
			date      TEXT NOT NULL DEFAULT '',
			duration  TEXT NOT NULL DEFAULT '',
			direction TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_call_records_device_number ON call_records (device_id, number)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id           BIGSERIAL PRIMARY KEY,
			device_id    TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			number       TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_device ON contacts (device_id)`,
	}

	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Ingest store adapter

func (r *Repositories) ReplaceMessages(ctx context.Context, deviceID string, messages []models.Message) error {
	return r.Messages.Replace(ctx, deviceID, messages)
}

func (r *Repositories) ReplaceCallRecords(ctx context.Context, deviceID string, records []models.CallRecord) error {
	return r.CallRecords.Replace(ctx, deviceID, records)
}

func (r *Repositories) ReplaceContacts(ctx context.Context, deviceID string, contacts []models.Contact) error {
	return r.Contacts.Replace(ctx, deviceID, contacts)
}

func (r *Repositories) ListContacts(ctx context.Context, deviceID string) ([]models.Contact, error) {
	return r.Contacts.List(ctx, deviceID)
}

// Query store adapter

func (r *Repositories) ListMessages(ctx context.Context, deviceID string, suspiciousOnly bool) ([]models.Message, error) {
	return r.Messages.List(ctx, deviceID, suspiciousOnly)
}

func (r *Repositories) FindMessagesByBody(ctx context.Context, deviceID, term string) ([]models.Message, error) {
	return r.Messages.FindByBody(ctx, deviceID, term)
}

func (r *Repositories) ListCallRecords(ctx context.Context, deviceID string) ([]models.CallRecord, error) {
	return r.CallRecords.List(ctx, deviceID)
}

// Analytics store adapter

func (r *Repositories) MessageVolume(ctx context.Context, deviceID string) ([]models.MessageVolume, error) {
	return r.Messages.Volume(ctx, deviceID)
}

func (r *Repositories) MessageTimeline(ctx context.Context, deviceID, from, to string) ([]models.TimelineBucket, error) {
	return r.Messages.Timeline(ctx, deviceID, from, to)
}

func (r *Repositories) CallRecordsByNumber(ctx context.Context, deviceID, number string) ([]models.CallRecord, error) {
	return r.CallRecords.ByNumber(ctx, deviceID, number)
}
