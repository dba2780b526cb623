package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WillyEverGreen/gigbridge/internal/ledger"
)

// PostgresStore is a pgx-backed ledger.Store. Each user's rating record is
// one JSONB blob keyed by user id, replaced whole on every write.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (p *PostgresStore) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// EnsureSchema creates the rating table if it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS user_ratings (
			user_id    TEXT PRIMARY KEY,
			record     JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create user_ratings table: %w", err)
	}
	return nil
}

// Get returns the stored record for a user, or (nil, nil) when absent.
func (p *PostgresStore) Get(ctx context.Context, userID string) (*ledger.UserRatingData, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx,
		`SELECT record FROM user_ratings WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating record: %w", err)
	}

	var record ledger.UserRatingData
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode rating record: %w", err)
	}
	return &record, nil
}

// Put upserts the whole record for a user.
func (p *PostgresStore) Put(ctx context.Context, userID string, record *ledger.UserRatingData) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode rating record: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO user_ratings (user_id, record)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET record = $2, updated_at = NOW()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save rating record: %w", err)
	}
	return nil
}

// Delete removes the record for a user. Deleting a missing record is not an
// error.
func (p *PostgresStore) Delete(ctx context.Context, userID string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM user_ratings WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete rating record: %w", err)
	}
	return nil
}

// UserIDs returns the ids of all stored records.
func (p *PostgresStore) UserIDs(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT user_id FROM user_ratings ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rating records: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rating records: %w", err)
	}
	return ids, nil
}
