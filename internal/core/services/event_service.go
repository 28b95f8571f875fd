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

type eventService struct {
	eventRepo ports.EventRepository
}

func NewEventService(eventRepo ports.EventRepository) ports.EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, ownerID domain.UserID, in ports.CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:        domain.EventID(uuid.NewString()),
		OwnerID:   ownerID,
		Title:     in.Title,
		Content:   in.Content,
		Images:    in.Images,
		Link:      in.Link,
		Date:      in.Date,
		CreatedAt: time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Upcoming(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

func (s *eventService) Past(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListPast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list past events: %w", err)
	}
	return events, nil
}

func (s *eventService) Delete(ctx context.Context, principal domain.UserID, id domain.EventID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return apperrors.NewNotFoundError("Event not found.")
		}
		return fmt.Errorf("failed to look up event: %w", err)
	}

	if event.OwnerID != principal {
		return apperrors.NewForbiddenError("You are not authorized to delete this event.")
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
