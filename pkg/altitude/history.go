package altitude

import (
	"context"
	"sort"
	"sync"
	"time"

	"liyu1981.xyz/altitude-guard/pkg/models"
	"liyu1981.xyz/altitude-guard/pkg/store"
)

const (
	HistoryWindow     = 24 * time.Hour
	HistoryMaxSamples = 1440
)

type historyStore struct {
	mu      sync.RWMutex
	repo    *store.Repository[[]models.AltitudeSample]
	samples []models.AltitudeSample
}

func newHistoryStore(ctx context.Context, repo *store.Repository[[]models.AltitudeSample]) *historyStore {
	samples := repo.Load(ctx)
	if n := len(samples); n > 0 {
		samples = trimHistory(samples, samples[n-1].Timestamp)
	}
	return &historyStore{repo: repo, samples: samples}
}

// trimHistory drops samples older than the window measured from newest, then
// caps the count, oldest first. It always returns a fresh slice.
func trimHistory(samples []models.AltitudeSample, newest int64) []models.AltitudeSample {
	cutoff := newest - HistoryWindow.Milliseconds()
	start := 0
	for start < len(samples) && samples[start].Timestamp < cutoff {
		start++
	}
	if len(samples)-start > HistoryMaxSamples {
		start = len(samples) - HistoryMaxSamples
	}
	return append([]models.AltitudeSample(nil), samples[start:]...)
}

// Append keeps samples in timestamp order and enforces both bounds before
// persisting. The in-memory copy is updated even when the write fails.
func (h *historyStore) Append(ctx context.Context, sample models.AltitudeSample) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := sort.Search(len(h.samples), func(i int) bool {
		return h.samples[i].Timestamp > sample.Timestamp
	})
	samples := make([]models.AltitudeSample, 0, len(h.samples)+1)
	samples = append(samples, h.samples[:i]...)
	samples = append(samples, sample)
	samples = append(samples, h.samples[i:]...)

	h.samples = trimHistory(samples, samples[len(samples)-1].Timestamp)
	return h.repo.Save(ctx, h.samples)
}

func (h *historyStore) Latest() (models.AltitudeSample, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.samples) == 0 {
		return models.AltitudeSample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

func (h *historyStore) Previous() (models.AltitudeSample, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.samples) < 2 {
		return models.AltitudeSample{}, false
	}
	return h.samples[len(h.samples)-2], true
}

func (h *historyStore) LastTwo() (models.AltitudeSample, models.AltitudeSample, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := len(h.samples)
	if n < 2 {
		return models.AltitudeSample{}, models.AltitudeSample{}, false
	}
	return h.samples[n-2], h.samples[n-1], true
}

func (h *historyStore) Since(fromMillis int64) []models.AltitudeSample {
	h.mu.RLock()
	defer h.mu.RUnlock()
	i := sort.Search(len(h.samples), func(i int) bool {
		return h.samples[i].Timestamp >= fromMillis
	})
	return append([]models.AltitudeSample{}, h.samples[i:]...)
}
