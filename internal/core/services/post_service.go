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

type postService struct {
	postRepo    ports.PostRepository
	commentRepo ports.CommentRepository
	likeRepo    ports.LikeRepository
}

func NewPostService(
	postRepo ports.PostRepository,
	commentRepo ports.CommentRepository,
	likeRepo ports.LikeRepository,
) ports.PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID domain.UserID, content string, mediaURLs []string) (*domain.Post, error) {
	post := &domain.Post{
		ID:        domain.PostID(uuid.NewString()),
		AuthorID:  authorID,
		Content:   content,
		MediaURLs: mediaURLs,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, principal domain.UserID, id domain.PostID) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return apperrors.NewNotFoundError("Post not found.")
		}
		return fmt.Errorf("failed to look up post: %w", err)
	}

	// Ownership check: only the author may delete.
	if post.AuthorID != principal {
		return apperrors.NewForbiddenError("You are not authorized to delete this post.")
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *postService) AddComment(ctx context.Context, authorID domain.UserID, postID domain.PostID, content string) (*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, apperrors.NewNotFoundError("Post not found.")
		}
		return nil, fmt.Errorf("failed to look up post: %w", err)
	}

	comment := &domain.Comment{
		ID:        domain.CommentID(uuid.NewString()),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *postService) DeleteComment(ctx context.Context, principal domain.UserID, postID domain.PostID, commentID domain.CommentID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return apperrors.NewNotFoundError("Comment not found.")
		}
		return fmt.Errorf("failed to look up comment: %w", err)
	}

	// The comment must belong to the post in the path.
	if comment.PostID != postID {
		return apperrors.NewNotFoundError("Comment not found.")
	}

	if comment.AuthorID != principal {
		return apperrors.NewForbiddenError("You are not authorized to delete this comment.")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *postService) LikePost(ctx context.Context, userID domain.UserID, postID domain.PostID) (*domain.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, apperrors.NewNotFoundError("Post not found.")
		}
		return nil, fmt.Errorf("failed to look up post: %w", err)
	}

	// Idempotence guard: at most one like edge per (post, user) pair.
	if existing, err := s.likeRepo.Find(ctx, postID, userID); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("You have already liked this post.")
	} else if err != nil && !errors.Is(err, domain.ErrLikeNotFound) {
		return nil, fmt.Errorf("failed to look up like: %w", err)
	}

	like := &domain.Like{
		ID:        domain.LikeID(uuid.NewString()),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, apperrors.NewConflictError("You have already liked this post.")
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}
	return like, nil
}

func (s *postService) UnlikePost(ctx context.Context, userID domain.UserID, postID domain.PostID) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return apperrors.NewNotFoundError("Post not found.")
		}
		return fmt.Errorf("failed to look up post: %w", err)
	}

	existing, err := s.likeRepo.Find(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLikeNotFound) {
			return apperrors.NewConflictError("You haven't liked this post yet.")
		}
		return fmt.Errorf("failed to look up like: %w", err)
	}

	if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
