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

type userService struct {
	userRepo ports.UserRepository
	auth     AuthService
}

func NewUserService(userRepo ports.UserRepository, auth AuthService) ports.UserService {
	return &userService{
		userRepo: userRepo,
		auth:     auth,
	}
}

func (s *userService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("Username already exists.")
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("Email already exists.")
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := s.auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Username:     in.Username,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleStandard,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperrors.NewConflictError("Username already exists.")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *userService) Signin(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Deliberately 404 and indistinguishable from a wrong password.
			return nil, apperrors.NewNotFoundError("Username or password incorrect.")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.NewNotFoundError("Username or password incorrect.")
	}

	return user, nil
}

func (s *userService) Update(ctx context.Context, id domain.UserID, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if in.Firstname != nil {
		user.Firstname = *in.Firstname
	}
	if in.Lastname != nil {
		user.Lastname = *in.Lastname
	}
	if in.Password != nil {
		hash, err := s.auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.CompanyLocation != nil {
		user.CompanyLocation = *in.CompanyLocation
	}
	if in.Industry != nil {
		user.Industry = *in.Industry
	}
	if in.FieldOfStudy != nil {
		user.FieldOfStudy = *in.FieldOfStudy
	}
	if in.GraduationStartYear != nil {
		user.GraduationStartYear = *in.GraduationStartYear
	}
	if in.GraduationEndYear != nil {
		user.GraduationEndYear = *in.GraduationEndYear
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id domain.UserID) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
