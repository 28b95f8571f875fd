package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"

	"github.com/google/uuid"
)

const leaderboardSize = 10

type donationService struct {
	donationRepo ports.DonationRepository
	userRepo     ports.UserRepository
}

func NewDonationService(donationRepo ports.DonationRepository, userRepo ports.UserRepository) ports.DonationService {
	return &donationService{
		donationRepo: donationRepo,
		userRepo:     userRepo,
	}
}

func (s *donationService) Create(ctx context.Context, donorID domain.UserID, amount float64, currency string) (*domain.Donation, error) {
	donation := &domain.Donation{
		ID:        domain.DonationID(uuid.NewString()),
		DonorID:   donorID,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: time.Now(),
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	return donation, nil
}

func (s *donationService) List(ctx context.Context) ([]*domain.Donation, error) {
	donations, err := s.donationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

func (s *donationService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	donorIDs, totals, err := s.donationRepo.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(donorIDs))
	for i, donorID := range donorIDs {
		user, err := s.userRepo.GetByID(ctx, donorID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to look up donor: %w", err)
		}
		entries = append(entries, domain.LeaderboardEntry{
			Donor:       user.Profile(),
			TotalAmount: totals[i],
		})
	}
	return entries, nil
}
