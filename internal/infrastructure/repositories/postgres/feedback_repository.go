package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type PostgresFeedbackRepository struct {
	db *sql.DB
}

func NewPostgresFeedbackRepository(db *sql.DB) ports.FeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedbacks (id, author_id, content, attached_file, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, fb.ID, fb.AuthorID, fb.Content, fb.AttachedFile, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *PostgresFeedbackRepository) GetByID(ctx context.Context, id domain.FeedbackID) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := r.db.QueryRowContext(ctx, `
		SELECT id, author_id, content, attached_file, created_at
		FROM feedbacks WHERE id = $1
	`, id).Scan(&fb.ID, &fb.AuthorID, &fb.Content, &fb.AttachedFile, &fb.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return &fb, nil
}

func (r *PostgresFeedbackRepository) Delete(ctx context.Context, id domain.FeedbackID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *PostgresFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, author_id, content, attached_file, created_at
		FROM feedbacks ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	defer rows.Close()

	var result []*domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.AuthorID, &fb.Content, &fb.AttachedFile, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		result = append(result, &fb)
	}
	return result, rows.Err()
}
