// Package store persists the engine's records as JSON blobs in a key-value
// backend, either gorm/sqlite or redis.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("store: key not found")

// KV is the byte-level persistence contract. Get returns ErrNotFound for a
// missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

const (
	KeySettings    = "altitude_settings"
	KeyProfile     = "altitude_profile"
	KeyHistory     = "altitude_history"
	KeyEvents      = "altitude_events"
	KeySymptomLogs = "symptom_logs"
)
