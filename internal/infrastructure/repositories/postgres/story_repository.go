package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type PostgresStoryRepository struct {
	db *sql.DB
}

func NewPostgresStoryRepository(db *sql.DB) ports.StoryRepository {
	return &PostgresStoryRepository{db: db}
}

const storyColumns = `id, author_id, title, description, published, created_at, updated_at`

func (r *PostgresStoryRepository) Create(ctx context.Context, story *domain.Story) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stories (`+storyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, story.ID, story.AuthorID, story.Title, story.Description,
		story.Published, story.CreatedAt, story.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create story: %w", err)
	}
	return nil
}

func (r *PostgresStoryRepository) GetByID(ctx context.Context, id domain.StoryID) (*domain.Story, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storyColumns+` FROM stories WHERE id = $1`, id)
	return scanStory(row)
}

func (r *PostgresStoryRepository) SetPublished(ctx context.Context, id domain.StoryID, published bool) (*domain.Story, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE stories SET published = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+storyColumns,
		id, published, time.Now().UTC())
	return scanStory(row)
}

func (r *PostgresStoryRepository) ListPublished(ctx context.Context) ([]*domain.Story, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+storyColumns+` FROM stories WHERE published ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer rows.Close()

	var result []*domain.Story
	for rows.Next() {
		var story domain.Story
		if err := rows.Scan(&story.ID, &story.AuthorID, &story.Title,
			&story.Description, &story.Published, &story.CreatedAt, &story.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		result = append(result, &story)
	}
	return result, rows.Err()
}

func scanStory(row *sql.Row) (*domain.Story, error) {
	var story domain.Story
	err := row.Scan(&story.ID, &story.AuthorID, &story.Title,
		&story.Description, &story.Published, &story.CreatedAt, &story.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("failed to scan story: %w", err)
	}
	return &story, nil
}
