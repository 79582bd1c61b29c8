package store

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/altitude-guard/pkg/db"
)

func newTestGormKV(t *testing.T) *GormKV {
	database, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	return NewGormKV(database)
}

func newTestRedisKV(t *testing.T) (*RedisKV, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := ConnectRedis(mr.Addr(), "")
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisKV(client), mr
}

// backends runs fn once per KV implementation.
func backends(t *testing.T, fn func(t *testing.T, kv KV)) {
	t.Run("gorm", func(t *testing.T) {
		fn(t, newTestGormKV(t))
	})
	t.Run("redis", func(t *testing.T) {
		kv, _ := newTestRedisKV(t)
		fn(t, kv)
	})
}
