package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type PostgresJobRepository struct {
	db *sql.DB
}

func NewPostgresJobRepository(db *sql.DB) ports.JobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, experience, location, job_type, industry, job_function, remote, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, job *domain.Job) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, job.ID, job.Title, job.Company, job.Experience, job.Location,
		job.JobType, job.Industry, job.JobFunction, job.Remote,
		job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var job domain.Job
	err := r.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Experience, &job.Location,
		&job.JobType, &job.Industry, &job.JobFunction, &job.Remote,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, job *domain.Job) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE jobs
		SET title = $2, company = $3, experience = $4, location = $5,
			job_type = $6, industry = $7, job_function = $8, remote = $9,
			updated_at = $10
		WHERE id = $1
	`, job.ID, job.Title, job.Company, job.Experience, job.Location,
		job.JobType, job.Industry, job.JobFunction, job.Remote, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id domain.JobID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR company ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR experience = $3)
		  AND ($4 = '' OR location ILIKE '%' || $4 || '%')
		  AND ($5 = '' OR job_type = $5)
		  AND ($6 = '' OR industry ILIKE '%' || $6 || '%')
		  AND ($7 = '' OR job_function ILIKE '%' || $7 || '%')
		  AND ($8 = '' OR remote = $8)
		ORDER BY created_at DESC
	`, filter.Title, filter.Company, filter.Experience, filter.Location,
		filter.JobType, filter.Industry, filter.JobFunction, filter.Remote)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var result []*domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Experience,
			&job.Location, &job.JobType, &job.Industry, &job.JobFunction,
			&job.Remote, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		result = append(result, &job)
	}
	return result, rows.Err()
}
