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

func newStoryFixture(t *testing.T) (ports.StoryService, ports.UserRepository) {
	t.Helper()
	userRepo := memory.NewMemoryUserRepository()
	return NewStoryService(memory.NewMemoryStoryRepository(), userRepo), userRepo
}

func seedAdmin(t *testing.T, repo ports.UserRepository, id domain.UserID) {
	t.Helper()
	now := time.Now()
	err := repo.Create(context.Background(), &domain.User{
		ID:        id,
		Username:  string(id),
		Firstname: "Admin",
		Lastname:  "User",
		Email:     string(id) + "@example.com",
		Role:      domain.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func TestStoryService_CreateUnpublished(t *testing.T) {
	svc, userRepo := newStoryFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")

	story, err := svc.Create(ctx, "alice", "From intern to CTO", "A long road.")
	require.NoError(t, err)
	assert.False(t, story.Published)

	// Unpublished stories are invisible.
	stories, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestStoryService_SetPublished_AdminOnly(t *testing.T) {
	svc, userRepo := newStoryFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "alice")
	seedAdmin(t, userRepo, "root")

	story, err := svc.Create(ctx, "alice", "From intern to CTO", "A long road.")
	require.NoError(t, err)

	// The author is not an admin: role, not ownership, decides.
	_, err = svc.SetPublished(ctx, "alice", story.ID, true)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 403, appErr.HTTPStatus)
	assert.Equal(t, "Only admins can publish or unpublish success stories.", appErr.Message)

	published, err := svc.SetPublished(ctx, "root", story.ID, true)
	require.NoError(t, err)
	assert.True(t, published.Published)

	stories, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 1)

	// Admins can also unpublish.
	unpublished, err := svc.SetPublished(ctx, "root", story.ID, false)
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
}

func TestStoryService_SetPublished_NotFound(t *testing.T) {
	svc, userRepo := newStoryFixture(t)
	ctx := context.Background()
	seedAdmin(t, userRepo, "root")

	_, err := svc.SetPublished(ctx, "root", "no-such-story", true)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "Story not found.", appErr.Message)
}
