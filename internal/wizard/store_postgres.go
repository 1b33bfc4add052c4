package wizard

import (
	"context"
	"database/sql"
	"errors"
)

const (
	createWizardStateTable = `
		CREATE TABLE IF NOT EXISTS wizard_state (
			state_key  TEXT PRIMARY KEY,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	getWizardStateQuery    = `SELECT state FROM wizard_state WHERE state_key = $1`
	upsertWizardStateQuery = `
		INSERT INTO wizard_state (state_key, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (state_key) DO UPDATE SET state = EXCLUDED.state, updated_at = now()
	`
	deleteWizardStateQuery = `DELETE FROM wizard_state WHERE state_key = $1`
)

// PostgresStore keeps wizard snapshots in the wizard_state table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the wizard_state table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createWizardStateTable)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	if err := s.db.QueryRowContext(ctx, getWizardStateQuery, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertWizardStateQuery, key, value)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, deleteWizardStateQuery, key)
	return err
}
