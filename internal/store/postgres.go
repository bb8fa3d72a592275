package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to url, pings it and ensures the schema exists.
func NewPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id UUID PRIMARY KEY,
			disease TEXT NOT NULL,
			inputs JSONB NOT NULL,
			vector DOUBLE PRECISION[] NOT NULL DEFAULT '{}',
			label INTEGER,
			message TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_predictions_disease_created
			ON predictions (disease, created_at DESC);
	`)
	return err
}

func (s *PostgresStore) Record(ctx context.Context, p *Prediction) error {
	inputs, err := json.Marshal(p.Inputs)
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	vector := p.Vector
	if vector == nil {
		vector = []float64{}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO predictions (id, disease, inputs, vector, label, message, error, model, created_at)
		VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Disease, string(inputs), vector, p.Label, p.Message, p.Error, p.Model, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, disease string, limit int) ([]Prediction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, disease, inputs, vector, label, message, error, model, created_at
		FROM predictions
		WHERE $1 = '' OR disease = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		disease, ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var out []Prediction
	for rows.Next() {
		var (
			p      Prediction
			inputs []byte
			label  *int32
		)
		if err := rows.Scan(&p.ID, &p.Disease, &inputs, &p.Vector, &label, &p.Message, &p.Error, &p.Model, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		if err := json.Unmarshal(inputs, &p.Inputs); err != nil {
			return nil, fmt.Errorf("decode inputs: %w", err)
		}
		if label != nil {
			l := int(*label)
			p.Label = &l
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
