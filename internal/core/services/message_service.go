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
	"go.uber.org/zap"
)

type messageService struct {
	messageRepo ports.MessageRepository
	userRepo    ports.UserRepository
	notifier    ports.Notifier
	logger      *zap.SugaredLogger
}

func NewMessageService(
	messageRepo ports.MessageRepository,
	userRepo ports.UserRepository,
	notifier ports.Notifier,
	logger *zap.SugaredLogger,
) ports.MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID domain.UserID, content, attachment string) (*domain.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Receiver not found.")
		}
		return nil, fmt.Errorf("failed to look up receiver: %w", err)
	}

	msg := &domain.Message{
		ID:         domain.MessageID(uuid.NewString()),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Attachment: attachment,
		CreatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	// Publish after persistence. Fire and forget: delivery failures are
	// the collaborator's problem, not the sender's.
	if s.notifier != nil {
		if err := s.notifier.MessageCreated(ctx, msg); err != nil {
			s.logger.Warnw("failed to publish message notification",
				"message_id", msg.ID,
				"error", err,
			)
		}
	}

	return msg, nil
}

func (s *messageService) ListConversation(ctx context.Context, principal, other domain.UserID) ([]*domain.Message, error) {
	messages, err := s.messageRepo.ListConversation(ctx, principal, other)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return messages, nil
}
