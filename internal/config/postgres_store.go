package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"onboard/internal/logging"
)

// configRowID pins the singleton row; the table never holds more than one.
const configRowID = 1

// PostgresStore persists the step configuration in Postgres.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgresStore constructs a Postgres-backed configuration store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logging.NewComponentLogger("ConfigStore"),
	}
}

// EnsureSchema creates the configuration table if needed.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("config store not initialized")
	}
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS onboarding_config (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    page2_components TEXT[] NOT NULL DEFAULT '{}',
    page3_components TEXT[] NOT NULL DEFAULT '{}'
);`)
	return err
}

// Load returns the live configuration, seeding the default when the row does
// not exist yet.
func (s *PostgresStore) Load(ctx context.Context) (StepConfig, error) {
	if s == nil || s.pool == nil {
		return StepConfig{}, fmt.Errorf("config store not initialized")
	}

	var cfg StepConfig
	err := s.pool.QueryRow(ctx,
		`SELECT page2_components, page3_components FROM onboarding_config WHERE id = $1`,
		configRowID,
	).Scan(&cfg.Page2Components, &cfg.Page3Components)
	if errors.Is(err, pgx.ErrNoRows) {
		s.logger.Info("No stored configuration, seeding default")
		return s.Replace(ctx, Default())
	}
	if err != nil {
		return StepConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.Normalized(), nil
}

// Replace swaps the whole configuration in one upsert.
func (s *PostgresStore) Replace(ctx context.Context, cfg StepConfig) (StepConfig, error) {
	if s == nil || s.pool == nil {
		return StepConfig{}, fmt.Errorf("config store not initialized")
	}

	normalized := cfg.Normalized()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO onboarding_config (id, page2_components, page3_components)
         VALUES ($1, $2, $3)
         ON CONFLICT (id) DO UPDATE
         SET page2_components = EXCLUDED.page2_components,
             page3_components = EXCLUDED.page3_components`,
		configRowID, normalized.Page2Components, normalized.Page3Components,
	)
	if err != nil {
		return StepConfig{}, fmt.Errorf("replace config: %w", err)
	}
	return normalized, nil
}
