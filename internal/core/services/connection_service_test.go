package services

import (
	"context"
	"testing"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/infrastructure/repositories/memory"
	apperrors "alumninet/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectionFixture(t *testing.T) (ports.ConnectionService, ports.ConnectionRepository, ports.UserRepository) {
	t.Helper()
	connRepo := memory.NewMemoryConnectionRepository()
	userRepo := memory.NewMemoryUserRepository()
	return NewConnectionService(connRepo, userRepo), connRepo, userRepo
}

func seedUser(t *testing.T, repo ports.UserRepository, id domain.UserID) {
	t.Helper()
	now := time.Now()
	err := repo.Create(context.Background(), &domain.User{
		ID:        id,
		Username:  string(id),
		Firstname: "Test",
		Lastname:  "User",
		Email:     string(id) + "@example.com",
		Role:      domain.RoleStandard,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func TestConnectionService_Request(t *testing.T) {
	svc, _, userRepo := newConnectionFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")
	seedUser(t, userRepo, "bob")

	conn, err := svc.Request(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionPending, conn.Status)
	assert.Equal(t, domain.UserID("alice"), conn.FollowerID)
	assert.Equal(t, domain.UserID("bob"), conn.FollowingID)
}

func TestConnectionService_Request_Self(t *testing.T) {
	svc, _, _ := newConnectionFixture(t)

	_, err := svc.Request(context.Background(), "alice", "alice")
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "You cannot follow yourself.", appErr.Message)
}

func TestConnectionService_Request_Duplicate(t *testing.T) {
	svc, _, userRepo := newConnectionFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")
	seedUser(t, userRepo, "bob")

	first, err := svc.Request(ctx, "alice", "bob")
	require.NoError(t, err)

	// A second request for the same ordered pair is rejected while the
	// edge is pending.
	_, err = svc.Request(ctx, "alice", "bob")
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "Connection request already exists.", appErr.Message)

	// And still rejected once the edge reached a terminal status.
	_, err = svc.Accept(ctx, "bob", first.ID)
	require.NoError(t, err)

	_, err = svc.Request(ctx, "alice", "bob")
	appErr = apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Connection request already exists.", appErr.Message)

	// The reverse direction is a distinct edge and is allowed.
	_, err = svc.Request(ctx, "bob", "alice")
	assert.NoError(t, err)
}

func TestConnectionService_AcceptReject(t *testing.T) {
	svc, _, userRepo := newConnectionFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")
	seedUser(t, userRepo, "bob")
	seedUser(t, userRepo, "carol")

	conn, err := svc.Request(ctx, "alice", "bob")
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, "bob", conn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionAccepted, accepted.Status)

	rejectable, err := svc.Request(ctx, "carol", "bob")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, "bob", rejectable.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionRejected, rejected.Status)
}

func TestConnectionService_InvalidTransitions(t *testing.T) {
	svc, connRepo, userRepo := newConnectionFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")
	seedUser(t, userRepo, "bob")

	conn, err := svc.Request(ctx, "alice", "bob")
	require.NoError(t, err)

	cases := []struct {
		name      string
		principal domain.UserID
		id        domain.ConnectionID
	}{
		{"unknown edge", "bob", "no-such-id"},
		{"follower acting", "alice", conn.ID},
		{"third party acting", "mallory", conn.ID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Accept(ctx, tc.principal, tc.id)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)
			assert.Equal(t, "Invalid connection request.", appErr.Message)
		})
	}

	// State is unchanged after every rejected attempt.
	stored, err := connRepo.GetByID(ctx, conn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionPending, stored.Status)

	// Terminal states never transition again.
	_, err = svc.Accept(ctx, "bob", conn.ID)
	require.NoError(t, err)

	_, err = svc.Reject(ctx, "bob", conn.ID)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid connection request.", appErr.Message)

	stored, err = connRepo.GetByID(ctx, conn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionAccepted, stored.Status)
}

func TestConnectionService_ListConnections(t *testing.T) {
	svc, _, userRepo := newConnectionFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")
	seedUser(t, userRepo, "bob")
	seedUser(t, userRepo, "carol")

	// alice follows bob (accepted), bob follows carol (pending)
	conn, err := svc.Request(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.Accept(ctx, "bob", conn.ID)
	require.NoError(t, err)

	_, err = svc.Request(ctx, "bob", "carol")
	require.NoError(t, err)

	followers, followings, err := svc.ListConnections(ctx, "bob")
	require.NoError(t, err)

	require.Len(t, followers, 1)
	assert.Equal(t, domain.UserID("alice"), followers[0].User.ID)

	// Pending edges are not connections yet.
	assert.Empty(t, followings)
}
