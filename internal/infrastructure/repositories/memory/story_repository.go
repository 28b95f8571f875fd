package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryStoryRepository struct {
	stories map[domain.StoryID]*domain.Story
	mu      sync.RWMutex
}

func NewMemoryStoryRepository() ports.StoryRepository {
	return &MemoryStoryRepository{
		stories: make(map[domain.StoryID]*domain.Story),
	}
}

func (r *MemoryStoryRepository) Create(ctx context.Context, story *domain.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *story
	r.stories[story.ID] = &stored
	return nil
}

func (r *MemoryStoryRepository) GetByID(ctx context.Context, id domain.StoryID) (*domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	story, exists := r.stories[id]
	if !exists {
		return nil, domain.ErrStoryNotFound
	}

	copied := *story
	return &copied, nil
}

func (r *MemoryStoryRepository) SetPublished(ctx context.Context, id domain.StoryID, published bool) (*domain.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	story, exists := r.stories[id]
	if !exists {
		return nil, domain.ErrStoryNotFound
	}

	story.Published = published
	story.UpdatedAt = time.Now().UTC()

	copied := *story
	return &copied, nil
}

func (r *MemoryStoryRepository) ListPublished(ctx context.Context) ([]*domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Story
	for _, story := range r.stories {
		if story.Published {
			copied := *story
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
