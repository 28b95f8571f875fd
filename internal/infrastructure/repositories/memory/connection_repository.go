package memory

import (
	"context"
	"sync"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryConnectionRepository struct {
	connections map[domain.ConnectionID]*domain.Connection
	mu          sync.RWMutex
}

func NewMemoryConnectionRepository() ports.ConnectionRepository {
	return &MemoryConnectionRepository{
		connections: make(map[domain.ConnectionID]*domain.Connection),
	}
}

func (r *MemoryConnectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.connections {
		if existing.FollowerID == conn.FollowerID && existing.FollowingID == conn.FollowingID {
			return domain.ErrAlreadyExists
		}
	}

	stored := *conn
	r.connections[conn.ID] = &stored
	return nil
}

func (r *MemoryConnectionRepository) GetByID(ctx context.Context, id domain.ConnectionID) (*domain.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, exists := r.connections[id]
	if !exists {
		return nil, domain.ErrConnectionNotFound
	}

	copied := *conn
	return &copied, nil
}

func (r *MemoryConnectionRepository) Find(ctx context.Context, followerID, followingID domain.UserID) (*domain.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conn := range r.connections {
		if conn.FollowerID == followerID && conn.FollowingID == followingID {
			copied := *conn
			return &copied, nil
		}
	}
	return nil, domain.ErrConnectionNotFound
}

func (r *MemoryConnectionRepository) UpdateStatus(ctx context.Context, id domain.ConnectionID, status domain.ConnectionStatus) (*domain.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, exists := r.connections[id]
	if !exists {
		return nil, domain.ErrConnectionNotFound
	}

	conn.Status = status
	conn.UpdatedAt = time.Now().UTC()

	copied := *conn
	return &copied, nil
}

func (r *MemoryConnectionRepository) ListFollowers(ctx context.Context, userID domain.UserID) ([]*domain.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Connection
	for _, conn := range r.connections {
		if conn.FollowingID == userID && conn.Status == domain.ConnectionAccepted {
			copied := *conn
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *MemoryConnectionRepository) ListFollowing(ctx context.Context, userID domain.UserID) ([]*domain.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Connection
	for _, conn := range r.connections {
		if conn.FollowerID == userID && conn.Status == domain.ConnectionAccepted {
			copied := *conn
			result = append(result, &copied)
		}
	}
	return result, nil
}
