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

type connectionService struct {
	connRepo ports.ConnectionRepository
	userRepo ports.UserRepository
}

func NewConnectionService(connRepo ports.ConnectionRepository, userRepo ports.UserRepository) ports.ConnectionService {
	return &connectionService{
		connRepo: connRepo,
		userRepo: userRepo,
	}
}

func (s *connectionService) Request(ctx context.Context, followerID, followingID domain.UserID) (*domain.Connection, error) {
	// Self-connections are rejected before any lookup.
	if followerID == followingID {
		return nil, apperrors.NewConflictError("You cannot follow yourself.")
	}

	// Idempotence guard: one edge per ordered pair, whatever its status.
	if existing, err := s.connRepo.Find(ctx, followerID, followingID); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("Connection request already exists.")
	} else if err != nil && !errors.Is(err, domain.ErrConnectionNotFound) {
		return nil, fmt.Errorf("failed to look up connection: %w", err)
	}

	now := time.Now()
	conn := &domain.Connection{
		ID:          domain.ConnectionID(uuid.NewString()),
		FollowerID:  followerID,
		FollowingID: followingID,
		Status:      domain.ConnectionPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.connRepo.Create(ctx, conn); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperrors.NewConflictError("Connection request already exists.")
		}
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}
	return conn, nil
}

func (s *connectionService) Accept(ctx context.Context, principal domain.UserID, id domain.ConnectionID) (*domain.Connection, error) {
	return s.transition(ctx, principal, id, domain.ConnectionAccepted)
}

func (s *connectionService) Reject(ctx context.Context, principal domain.UserID, id domain.ConnectionID) (*domain.Connection, error) {
	return s.transition(ctx, principal, id, domain.ConnectionRejected)
}

// transition moves a PENDING edge to a terminal status. Only the followed
// user may act, and only while the edge is still PENDING; everything else
// is the same opaque 400.
func (s *connectionService) transition(ctx context.Context, principal domain.UserID, id domain.ConnectionID, status domain.ConnectionStatus) (*domain.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrConnectionNotFound) {
			return nil, apperrors.NewInvalidInputError("Invalid connection request.")
		}
		return nil, fmt.Errorf("failed to look up connection: %w", err)
	}

	if conn.FollowingID != principal || conn.Status != domain.ConnectionPending {
		return nil, apperrors.NewInvalidInputError("Invalid connection request.")
	}

	updated, err := s.connRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update connection: %w", err)
	}
	return updated, nil
}

func (s *connectionService) ListConnections(ctx context.Context, userID domain.UserID) ([]domain.ConnectionView, []domain.ConnectionView, error) {
	followerEdges, err := s.connRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list followers: %w", err)
	}

	followingEdges, err := s.connRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list followings: %w", err)
	}

	followers, err := s.views(ctx, followerEdges, func(c *domain.Connection) domain.UserID { return c.FollowerID })
	if err != nil {
		return nil, nil, err
	}
	followings, err := s.views(ctx, followingEdges, func(c *domain.Connection) domain.UserID { return c.FollowingID })
	if err != nil {
		return nil, nil, err
	}

	return followers, followings, nil
}

func (s *connectionService) views(ctx context.Context, edges []*domain.Connection, far func(*domain.Connection) domain.UserID) ([]domain.ConnectionView, error) {
	views := make([]domain.ConnectionView, 0, len(edges))
	for _, edge := range edges {
		user, err := s.userRepo.GetByID(ctx, far(edge))
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				// Edge pointing at a deleted account; skip it.
				continue
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		views = append(views, domain.ConnectionView{Connection: *edge, User: user.Profile()})
	}
	return views, nil
}
