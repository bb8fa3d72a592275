package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens dbPath, creating the file and schema when missing.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSQLiteSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSQLiteSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		disease TEXT NOT NULL,
		inputs TEXT NOT NULL,
		vector TEXT NOT NULL DEFAULT '[]',
		label INTEGER,
		message TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_disease ON predictions(disease);
	CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Record inserts p.
func (s *SQLiteStore) Record(ctx context.Context, p *Prediction) error {
	inputs, err := json.Marshal(p.Inputs)
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}
	vector, err := json.Marshal(p.Vector)
	if err != nil {
		return fmt.Errorf("failed to encode vector: %w", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	var label sql.NullInt64
	if p.Label != nil {
		label = sql.NullInt64{Int64: int64(*p.Label), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO predictions (id, disease, inputs, vector, label, message, error, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Disease, string(inputs), string(vector), label, p.Message, p.Error, p.Model, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// Recent lists the newest predictions.
func (s *SQLiteStore) Recent(ctx context.Context, disease string, limit int) ([]Prediction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, disease, inputs, vector, label, message, error, model, created_at
		FROM predictions
		WHERE ? = '' OR disease = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`,
		disease, disease, ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var out []Prediction
	for rows.Next() {
		var (
			p              Prediction
			inputs, vector string
			label          sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.Disease, &inputs, &vector, &label, &p.Message, &p.Error, &p.Model, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if err := json.Unmarshal([]byte(inputs), &p.Inputs); err != nil {
			return nil, fmt.Errorf("failed to decode inputs: %w", err)
		}
		if err := json.Unmarshal([]byte(vector), &p.Vector); err != nil {
			return nil, fmt.Errorf("failed to decode vector: %w", err)
		}
		if label.Valid {
			l := int(label.Int64)
			p.Label = &l
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
