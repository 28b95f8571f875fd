package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryJobRepository struct {
	jobs map[domain.JobID]*domain.Job
	mu   sync.RWMutex
}

func NewMemoryJobRepository() ports.JobRepository {
	return &MemoryJobRepository{
		jobs: make(map[domain.JobID]*domain.Job),
	}
}

func (r *MemoryJobRepository) Create(ctx context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *MemoryJobRepository) GetByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, domain.ErrJobNotFound
	}

	copied := *job
	return &copied, nil
}

func (r *MemoryJobRepository) Update(ctx context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; !exists {
		return domain.ErrJobNotFound
	}

	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *MemoryJobRepository) Delete(ctx context.Context, id domain.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; !exists {
		return domain.ErrJobNotFound
	}

	delete(r.jobs, id)
	return nil
}

func (r *MemoryJobRepository) List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Job
	for _, job := range r.jobs {
		if matchesJobFilter(job, filter) {
			copied := *job
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func matchesJobFilter(job *domain.Job, filter domain.JobFilter) bool {
	if !containsFold(job.Title, filter.Title) {
		return false
	}
	if !containsFold(job.Company, filter.Company) {
		return false
	}
	if !containsFold(job.Industry, filter.Industry) {
		return false
	}
	if !containsFold(job.JobFunction, filter.JobFunction) {
		return false
	}
	if !containsFold(job.Location, filter.Location) {
		return false
	}
	if filter.Experience != "" && job.Experience != filter.Experience {
		return false
	}
	if filter.JobType != "" && job.JobType != filter.JobType {
		return false
	}
	if filter.Remote != "" && job.Remote != filter.Remote {
		return false
	}
	return true
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}
