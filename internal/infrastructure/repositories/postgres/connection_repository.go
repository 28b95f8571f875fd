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

type PostgresConnectionRepository struct {
	db *sql.DB
}

func NewPostgresConnectionRepository(db *sql.DB) ports.ConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

const connectionColumns = `id, follower_id, following_id, status, created_at, updated_at`

func (r *PostgresConnectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO connections (`+connectionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, conn.ID, conn.FollowerID, conn.FollowingID, conn.Status, conn.CreatedAt, conn.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create connection: %w", err)
	}
	return nil
}

func (r *PostgresConnectionRepository) GetByID(ctx context.Context, id domain.ConnectionID) (*domain.Connection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE id = $1`, id)
	return scanConnection(row)
}

func (r *PostgresConnectionRepository) Find(ctx context.Context, followerID, followingID domain.UserID) (*domain.Connection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID)
	return scanConnection(row)
}

func (r *PostgresConnectionRepository) UpdateStatus(ctx context.Context, id domain.ConnectionID, status domain.ConnectionStatus) (*domain.Connection, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE connections SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+connectionColumns,
		id, status, time.Now().UTC())
	return scanConnection(row)
}

func (r *PostgresConnectionRepository) ListFollowers(ctx context.Context, userID domain.UserID) ([]*domain.Connection, error) {
	return r.list(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE following_id = $1 AND status = $2`,
		userID, domain.ConnectionAccepted)
}

func (r *PostgresConnectionRepository) ListFollowing(ctx context.Context, userID domain.UserID) ([]*domain.Connection, error) {
	return r.list(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE follower_id = $1 AND status = $2`,
		userID, domain.ConnectionAccepted)
}

func (r *PostgresConnectionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Connection, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer rows.Close()

	var result []*domain.Connection
	for rows.Next() {
		var conn domain.Connection
		if err := rows.Scan(&conn.ID, &conn.FollowerID, &conn.FollowingID,
			&conn.Status, &conn.CreatedAt, &conn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		result = append(result, &conn)
	}
	return result, rows.Err()
}

func scanConnection(row *sql.Row) (*domain.Connection, error) {
	var conn domain.Connection
	err := row.Scan(&conn.ID, &conn.FollowerID, &conn.FollowingID,
		&conn.Status, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to scan connection: %w", err)
	}
	return &conn, nil
}
