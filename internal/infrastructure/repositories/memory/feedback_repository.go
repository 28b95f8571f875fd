package memory

import (
	"context"
	"sort"
	"sync"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryFeedbackRepository struct {
	feedbacks map[domain.FeedbackID]*domain.Feedback
	mu        sync.RWMutex
}

func NewMemoryFeedbackRepository() ports.FeedbackRepository {
	return &MemoryFeedbackRepository{
		feedbacks: make(map[domain.FeedbackID]*domain.Feedback),
	}
}

func (r *MemoryFeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *fb
	r.feedbacks[fb.ID] = &stored
	return nil
}

func (r *MemoryFeedbackRepository) GetByID(ctx context.Context, id domain.FeedbackID) (*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fb, exists := r.feedbacks[id]
	if !exists {
		return nil, domain.ErrFeedbackNotFound
	}

	copied := *fb
	return &copied, nil
}

func (r *MemoryFeedbackRepository) Delete(ctx context.Context, id domain.FeedbackID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.feedbacks[id]; !exists {
		return domain.ErrFeedbackNotFound
	}

	delete(r.feedbacks, id)
	return nil
}

func (r *MemoryFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Feedback, 0, len(r.feedbacks))
	for _, fb := range r.feedbacks {
		copied := *fb
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
