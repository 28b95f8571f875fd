package memory

import (
	"context"
	"sort"
	"sync"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryDonationRepository struct {
	donations []*domain.Donation
	mu        sync.RWMutex
}

func NewMemoryDonationRepository() ports.DonationRepository {
	return &MemoryDonationRepository{}
}

func (r *MemoryDonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *donation
	r.donations = append(r.donations, &stored)
	return nil
}

func (r *MemoryDonationRepository) List(ctx context.Context) ([]*domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Donation, 0, len(r.donations))
	for _, donation := range r.donations {
		copied := *donation
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryDonationRepository) Leaderboard(ctx context.Context, limit int) ([]domain.UserID, []float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[domain.UserID]float64)
	for _, donation := range r.donations {
		totals[donation.DonorID] += donation.Amount
	}

	donors := make([]domain.UserID, 0, len(totals))
	for donor := range totals {
		donors = append(donors, donor)
	}
	sort.Slice(donors, func(i, j int) bool {
		if totals[donors[i]] != totals[donors[j]] {
			return totals[donors[i]] > totals[donors[j]]
		}
		return donors[i] < donors[j]
	})

	if limit > 0 && len(donors) > limit {
		donors = donors[:limit]
	}

	amounts := make([]float64, len(donors))
	for i, donor := range donors {
		amounts[i] = totals[donor]
	}
	return donors, amounts, nil
}
