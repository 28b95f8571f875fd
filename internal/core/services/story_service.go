package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	apperrors "alumninet/pkg/errors"

	"github.com/google/uuid"
)

type storyService struct {
	storyRepo ports.StoryRepository
	userRepo  ports.UserRepository
}

func NewStoryService(storyRepo ports.StoryRepository, userRepo ports.UserRepository) ports.StoryService {
	return &storyService{
		storyRepo: storyRepo,
		userRepo:  userRepo,
	}
}

func (s *storyService) Create(ctx context.Context, authorID domain.UserID, title, description string) (*domain.Story, error) {
	now := time.Now()
	story := &domain.Story{
		ID:          domain.StoryID(uuid.NewString()),
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Published:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}
	return story, nil
}

func (s *storyService) ListPublished(ctx context.Context) ([]*domain.Story, error) {
	stories, err := s.storyRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

func (s *storyService) SetPublished(ctx context.Context, principal domain.UserID, id domain.StoryID, published bool) (*domain.Story, error) {
	// Role check, not an ownership check: publication is an admin power
	// and authorship grants nothing here.
	user, err := s.userRepo.GetByID(ctx, principal)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewForbiddenError("Only admins can publish or unpublish success stories.")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbiddenError("Only admins can publish or unpublish success stories.")
	}

	if _, err := s.storyRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			return nil, apperrors.NewNotFoundError("Story not found.")
		}
		return nil, fmt.Errorf("failed to look up story: %w", err)
	}

	story, err := s.storyRepo.SetPublished(ctx, id, published)
	if err != nil {
		return nil, fmt.Errorf("failed to update story: %w", err)
	}
	return story, nil
}
