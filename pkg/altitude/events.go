package altitude

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"liyu1981.xyz/altitude-guard/pkg/models"
	"liyu1981.xyz/altitude-guard/pkg/store"
)

type eventStore struct {
	mu     sync.RWMutex
	repo   *store.Repository[[]models.AltitudeEvent]
	events []models.AltitudeEvent
}

func newEventStore(ctx context.Context, repo *store.Repository[[]models.AltitudeEvent]) *eventStore {
	return &eventStore{repo: repo, events: repo.Load(ctx)}
}

// Record appends new events and returns the ones actually kept. While an
// unresolved high-altitude event is open, further high-altitude events are
// dropped.
func (s *eventStore) Record(ctx context.Context, events []models.AltitudeEvent) ([]models.AltitudeEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recorded []models.AltitudeEvent
	for _, event := range events {
		if event.Type == models.EventTypeHighAltitude && s.hasOpen(models.EventTypeHighAltitude) {
			continue
		}
		if event.ID == "" {
			event.ID = uuid.NewString()
		}
		event.Resolved = false
		s.events = append(s.events, event)
		recorded = append(recorded, event)
	}

	if len(recorded) == 0 {
		return nil, nil
	}
	return recorded, s.repo.Save(ctx, s.events)
}

func (s *eventStore) hasOpen(eventType models.EventType) bool {
	for _, e := range s.events {
		if e.Type == eventType && !e.Resolved {
			return true
		}
	}
	return false
}

// List returns newest first.
func (s *eventStore) List(includeResolved bool) []models.AltitudeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AltitudeEvent, 0, len(s.events))
	for _, e := range s.events {
		if e.Resolved && !includeResolved {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime > out[j].StartTime
	})
	return out
}

// Resolve is one-way and idempotent. It reports false only for unknown ids.
func (s *eventStore) Resolve(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		if s.events[i].Resolved {
			return true, nil
		}
		s.events[i].Resolved = true
		return true, s.repo.Save(ctx, s.events)
	}
	return false, nil
}
