// Package store keeps an optional history of predictions.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrDisabled is returned when history is requested but no store is configured.
var ErrDisabled = errors.New("prediction history is disabled")

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

// Prediction is one recorded diagnosis.
type Prediction struct {
	ID        string             `json:"id"`
	Disease   string             `json:"disease"`
	Inputs    map[string]float64 `json:"inputs"`
	Vector    []float64          `json:"vector,omitempty"`
	Label     *int               `json:"label,omitempty"`
	Message   string             `json:"message"`
	Error     string             `json:"error,omitempty"`
	Model     string             `json:"model,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Store persists predictions. Implementations are safe for concurrent use.
type Store interface {
	Record(ctx context.Context, p *Prediction) error
	// Recent returns up to limit predictions, newest first. An empty disease
	// matches every disease.
	Recent(ctx context.Context, disease string, limit int) ([]Prediction, error)
	Ping(ctx context.Context) error
	Close() error
}

// ClampLimit bounds a caller supplied page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
