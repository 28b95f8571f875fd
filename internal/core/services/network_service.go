package services

import (
	"context"
	"fmt"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type networkService struct {
	userRepo ports.UserRepository
}

func NewNetworkService(userRepo ports.UserRepository) ports.NetworkService {
	return &networkService{userRepo: userRepo}
}

func (s *networkService) Search(ctx context.Context, query string) ([]domain.Profile, error) {
	profiles, err := s.userRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return profiles, nil
}

func (s *networkService) Filter(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, error) {
	profiles, err := s.userRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter users: %w", err)
	}
	return profiles, nil
}
