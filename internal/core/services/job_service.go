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

type jobService struct {
	jobRepo ports.JobRepository
}

func NewJobService(jobRepo ports.JobRepository) ports.JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) Create(ctx context.Context, in ports.JobInput) (*domain.Job, error) {
	now := time.Now()
	job := &domain.Job{
		ID:          domain.JobID(uuid.NewString()),
		Title:       in.Title,
		Company:     in.Company,
		Experience:  in.Experience,
		Location:    in.Location,
		JobType:     in.JobType,
		Industry:    in.Industry,
		JobFunction: in.JobFunction,
		Remote:      in.Remote,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("Job not found.")
		}
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id domain.JobID, in ports.JobInput) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("Job not found.")
		}
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}

	job.Title = in.Title
	job.Company = in.Company
	job.Experience = in.Experience
	job.Location = in.Location
	job.JobType = in.JobType
	job.Industry = in.Industry
	job.JobFunction = in.JobFunction
	job.Remote = in.Remote
	job.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id domain.JobID) error {
	if _, err := s.jobRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return apperrors.NewNotFoundError("Job not found.")
		}
		return fmt.Errorf("failed to look up job: %w", err)
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func (s *jobService) List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}
