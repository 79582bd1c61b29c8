package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
)

// Repository is a typed view over a single KV key. Missing, unparseable or
// invalid values load as the fallback.
type Repository[T any] struct {
	kv       KV
	key      string
	fallback func() T
	check    func(*T) error
}

func NewRepository[T any](kv KV, key string, fallback func() T, check func(*T) error) *Repository[T] {
	return &Repository[T]{kv: kv, key: key, fallback: fallback, check: check}
}

func (r *Repository[T]) Key() string {
	return r.key
}

// Load never fails. Backend errors and corrupt records are logged and
// replaced by the fallback value.
func (r *Repository[T]) Load(ctx context.Context) T {
	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryStore)

	raw, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		return r.fallback()
	}
	if err != nil {
		logger.Warn("Failed to read record, using default", zap.String("key", r.key), zap.Error(err))
		return r.fallback()
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("Discarding unparseable record", zap.String("key", r.key), zap.Error(err))
		return r.fallback()
	}

	if r.check != nil {
		if err := r.check(&value); err != nil {
			logger.Warn("Discarding invalid record", zap.String("key", r.key), zap.Error(err))
			return r.fallback()
		}
	}

	return value
}

func (r *Repository[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.kv.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", r.key, err)
	}
	return nil
}
