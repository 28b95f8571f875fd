package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"

	"github.com/lib/pq"
)

type PostgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) ports.EventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, owner_id, title, content, images, link, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, event.ID, event.OwnerID, event.Title, event.Content,
		pq.Array(event.Images), event.Link, event.Date, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	var event domain.Event
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, content, images, link, date, created_at
		FROM events WHERE id = $1
	`, id).Scan(&event.ID, &event.OwnerID, &event.Title, &event.Content,
		pq.Array(&event.Images), &event.Link, &event.Date, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id domain.EventID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *PostgresEventRepository) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, `
		SELECT id, owner_id, title, content, images, link, date, created_at
		FROM events WHERE date > now() ORDER BY date ASC
	`)
}

func (r *PostgresEventRepository) ListPast(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, `
		SELECT id, owner_id, title, content, images, link, date, created_at
		FROM events WHERE date < now() ORDER BY date DESC
	`)
}

func (r *PostgresEventRepository) list(ctx context.Context, query string) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var result []*domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.OwnerID, &event.Title, &event.Content,
			pq.Array(&event.Images), &event.Link, &event.Date, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		result = append(result, &event)
	}
	return result, rows.Err()
}
