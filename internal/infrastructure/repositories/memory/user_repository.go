package memory

import (
	"context"
	"strings"
	"sync"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryUserRepository struct {
	users map[domain.UserID]*domain.User
	mu    sync.RWMutex
}

func NewMemoryUserRepository() ports.UserRepository {
	return &MemoryUserRepository{
		users: make(map[domain.UserID]*domain.User),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domain.ErrAlreadyExists
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		return domain.ErrUserNotFound
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return domain.ErrUserNotFound
	}

	delete(r.users, id)
	return nil
}

func (r *MemoryUserRepository) Search(ctx context.Context, query string) ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var result []domain.Profile
	for _, user := range r.users {
		if strings.Contains(strings.ToLower(user.Firstname), query) ||
			strings.Contains(strings.ToLower(user.Lastname), query) ||
			strings.Contains(strings.ToLower(user.Username), query) {
			result = append(result, user.Profile())
		}
	}
	return result, nil
}

func (r *MemoryUserRepository) Filter(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Profile
	for _, user := range r.users {
		if matchesFilter(user, filter) {
			result = append(result, user.Profile())
		}
	}
	return result, nil
}

func matchesFilter(user *domain.User, filter domain.ProfileFilter) bool {
	if filter.GraduationStartYearFrom != 0 && user.GraduationStartYear < filter.GraduationStartYearFrom {
		return false
	}
	if filter.GraduationStartYearTo != 0 && user.GraduationStartYear > filter.GraduationStartYearTo {
		return false
	}
	if filter.Location != "" && !strings.EqualFold(user.Location, filter.Location) {
		return false
	}
	if filter.Industry != "" && !strings.EqualFold(user.Industry, filter.Industry) {
		return false
	}
	if filter.FieldOfStudy != "" && !strings.EqualFold(user.FieldOfStudy, filter.FieldOfStudy) {
		return false
	}
	if filter.Company != "" && !strings.EqualFold(user.Company, filter.Company) {
		return false
	}
	return true
}
