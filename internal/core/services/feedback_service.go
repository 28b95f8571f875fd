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

type feedbackService struct {
	feedbackRepo ports.FeedbackRepository
}

func NewFeedbackService(feedbackRepo ports.FeedbackRepository) ports.FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) Create(ctx context.Context, authorID domain.UserID, content, attachedFile string) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		ID:           domain.FeedbackID(uuid.NewString()),
		AuthorID:     authorID,
		Content:      content,
		AttachedFile: attachedFile,
		CreatedAt:    time.Now(),
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context) ([]*domain.Feedback, error) {
	feedbacks, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	return feedbacks, nil
}

func (s *feedbackService) Delete(ctx context.Context, principal domain.UserID, id domain.FeedbackID) error {
	fb, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return apperrors.NewNotFoundError("Feedback not found.")
		}
		return fmt.Errorf("failed to look up feedback: %w", err)
	}

	if fb.AuthorID != principal {
		return apperrors.NewForbiddenError("You are not authorized to delete this feedback.")
	}

	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}
