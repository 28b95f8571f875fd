package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryEventRepository struct {
	events map[domain.EventID]*domain.Event
	mu     sync.RWMutex
}

func NewMemoryEventRepository() ports.EventRepository {
	return &MemoryEventRepository{
		events: make(map[domain.EventID]*domain.Event),
	}
}

func (r *MemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *MemoryEventRepository) GetByID(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, exists := r.events[id]
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	copied := *event
	return &copied, nil
}

func (r *MemoryEventRepository) Delete(ctx context.Context, id domain.EventID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return domain.ErrEventNotFound
	}

	delete(r.events, id)
	return nil
}

func (r *MemoryEventRepository) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	var result []*domain.Event
	for _, event := range r.events {
		if event.Date.After(now) {
			copied := *event
			result = append(result, &copied)
		}
	}

	// Soonest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (r *MemoryEventRepository) ListPast(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	var result []*domain.Event
	for _, event := range r.events {
		if event.Date.Before(now) {
			copied := *event
			result = append(result, &copied)
		}
	}

	// Most recent first
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}
