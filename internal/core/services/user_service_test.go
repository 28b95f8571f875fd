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

func newUserService(t *testing.T) (ports.UserService, ports.UserRepository) {
	t.Helper()
	repo := memory.NewMemoryUserRepository()
	auth := NewAuthService("test-secret", time.Hour, 24*time.Hour)
	return NewUserService(repo, auth), repo
}

func signupInput(username, email string) ports.SignupInput {
	return ports.SignupInput{
		Username:  username,
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     email,
		Password:  "correcthorse",
	}
}

func TestUserService_Signup(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStandard, user.Role)
	assert.NotEmpty(t, user.ID)

	// Password is stored only as a hash.
	stored, err := repo.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correcthorse", stored.PasswordHash)
}

func TestUserService_Signup_DuplicateUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	_, err = svc.Signup(ctx, signupInput("ada", "other@example.com"))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "Username already exists.", appErr.Message)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	_, err = svc.Signup(ctx, signupInput("grace", "ada@example.com"))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "Email already exists.", appErr.Message)
}

func TestUserService_Signin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	user, err := svc.Signin(ctx, "ada", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestUserService_Signin_BadCredentials(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	// Unknown username and wrong password produce the same opaque 404.
	for _, attempt := range []struct{ username, password string }{
		{"nobody", "correcthorse"},
		{"ada", "wrong-password"},
	} {
		_, err := svc.Signin(ctx, attempt.username, attempt.password)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Username or password incorrect.", appErr.Message)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	bio := "Analyst"
	company := "Babbage & Co"
	updated, err := svc.Update(ctx, created.ID, ports.UpdateUserInput{
		Bio:     &bio,
		Company: &company,
	})
	require.NoError(t, err)
	assert.Equal(t, "Analyst", updated.Bio)
	assert.Equal(t, "Babbage & Co", updated.Company)

	// Untouched fields stay intact.
	assert.Equal(t, "Ada", updated.Firstname)
	assert.Equal(t, "ada", updated.Username)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	before, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	password := "newpassword123"
	_, err = svc.Update(ctx, created.ID, ports.UpdateUserInput{Password: &password})
	require.NoError(t, err)

	after, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.NotEqual(t, "newpassword123", after.PasswordHash)

	_, err = svc.Signin(ctx, "ada", "newpassword123")
	assert.NoError(t, err)
}

func TestUserService_Delete(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, signupInput("ada", "ada@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
