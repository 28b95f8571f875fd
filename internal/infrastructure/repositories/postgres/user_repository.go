package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) ports.UserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, username, firstname, lastname, email, password_hash, role,
	avatar_url, bio, company, company_location, industry, field_of_study,
	graduation_start_year, graduation_end_year, location, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, user.ID, user.Username, user.Firstname, user.Lastname, user.Email,
		user.PasswordHash, user.Role, user.AvatarURL, user.Bio, user.Company,
		user.CompanyLocation, user.Industry, user.FieldOfStudy,
		user.GraduationStartYear, user.GraduationEndYear, user.Location,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET firstname = $2, lastname = $3, password_hash = $4, avatar_url = $5,
			bio = $6, company = $7, company_location = $8, industry = $9,
			field_of_study = $10, graduation_start_year = $11,
			graduation_end_year = $12, location = $13, updated_at = $14
		WHERE id = $1
	`, user.ID, user.Firstname, user.Lastname, user.PasswordHash, user.AvatarURL,
		user.Bio, user.Company, user.CompanyLocation, user.Industry,
		user.FieldOfStudy, user.GraduationStartYear, user.GraduationEndYear,
		user.Location, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id domain.UserID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Search(ctx context.Context, query string) ([]domain.Profile, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, firstname, lastname, avatar_url, bio, company
		FROM users
		WHERE firstname ILIKE $1 OR lastname ILIKE $1 OR username ILIKE $1
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *PostgresUserRepository) Filter(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, firstname, lastname, avatar_url, bio, company
		FROM users
		WHERE ($1 = 0 OR graduation_start_year >= $1)
		  AND ($2 = 0 OR graduation_start_year <= $2)
		  AND ($3 = '' OR location ILIKE $3)
		  AND ($4 = '' OR industry ILIKE $4)
		  AND ($5 = '' OR field_of_study ILIKE $5)
		  AND ($6 = '' OR company ILIKE $6)
	`, filter.GraduationStartYearFrom, filter.GraduationStartYearTo,
		filter.Location, filter.Industry, filter.FieldOfStudy, filter.Company)
	if err != nil {
		return nil, fmt.Errorf("failed to filter users: %w", err)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func scanProfiles(rows *sql.Rows) ([]domain.Profile, error) {
	var result []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Firstname, &p.Lastname, &p.AvatarURL, &p.Bio, &p.Company); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Firstname, &user.Lastname,
		&user.Email, &user.PasswordHash, &user.Role, &user.AvatarURL, &user.Bio,
		&user.Company, &user.CompanyLocation, &user.Industry, &user.FieldOfStudy,
		&user.GraduationStartYear, &user.GraduationEndYear, &user.Location,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
