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

type PostgresPostRepository struct {
	db *sql.DB
}

func NewPostgresPostRepository(db *sql.DB) ports.PostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, author_id, content, media_urls, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, post.ID, post.AuthorID, post.Content, pq.Array(post.MediaURLs), post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostgresPostRepository) GetByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	var post domain.Post
	err := r.db.QueryRowContext(ctx, `
		SELECT id, author_id, content, media_urls, created_at
		FROM posts WHERE id = $1
	`, id).Scan(&post.ID, &post.AuthorID, &post.Content, pq.Array(&post.MediaURLs), &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

func (r *PostgresPostRepository) Delete(ctx context.Context, id domain.PostID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

type PostgresCommentRepository struct {
	db *sql.DB
}

func NewPostgresCommentRepository(db *sql.DB) ports.CommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.PostID, comment.AuthorID, comment.Content, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *PostgresCommentRepository) GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.QueryRowContext(ctx, `
		SELECT id, post_id, author_id, content, created_at
		FROM comments WHERE id = $1
	`, id).Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *PostgresCommentRepository) Delete(ctx context.Context, id domain.CommentID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

type PostgresLikeRepository struct {
	db *sql.DB
}

func NewPostgresLikeRepository(db *sql.DB) ports.LikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO likes (id, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, like.ID, like.PostID, like.UserID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *PostgresLikeRepository) Find(ctx context.Context, postID domain.PostID, userID domain.UserID) (*domain.Like, error) {
	var like domain.Like
	err := r.db.QueryRowContext(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID).Scan(&like.ID, &like.PostID, &like.UserID, &like.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}
	return &like, nil
}

func (r *PostgresLikeRepository) Delete(ctx context.Context, id domain.LikeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}
