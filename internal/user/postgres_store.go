package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"onboard/internal/logging"
)

// PostgresStore persists onboarding records in Postgres.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgresStore constructs a Postgres-backed record store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logging.NewComponentLogger("UserStore"),
	}
}

// EnsureSchema creates the records table if needed.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("user store not initialized")
	}
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS onboarding_users (
    id BIGSERIAL PRIMARY KEY,
    email TEXT NOT NULL,
    password TEXT NOT NULL DEFAULT '',
    about_me TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    birthdate TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`)
	return err
}

// Create inserts a record and returns the stored shape. The password column
// is written but never read back.
func (s *PostgresStore) Create(ctx context.Context, sub Submission) (Record, error) {
	if s == nil || s.pool == nil {
		return Record{}, fmt.Errorf("user store not initialized")
	}

	rec := Record{
		Email:     sub.Email,
		AboutMe:   sub.AboutMe,
		Address:   sub.Address(),
		Birthdate: sub.Birthdate,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO onboarding_users (email, password, about_me, address, birthdate)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		rec.Email, sub.Password, rec.AboutMe, rec.Address, rec.Birthdate,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("create user: %w", err)
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}

// List returns all records in insertion order.
func (s *PostgresStore) List(ctx context.Context) ([]Record, error) {
	if s == nil || s.pool == nil {
		return nil, fmt.Errorf("user store not initialized")
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, email, about_me, address, birthdate, created_at
         FROM onboarding_users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var createdAt time.Time
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.AboutMe, &rec.Address, &rec.Birthdate, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		rec.CreatedAt = createdAt.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}
