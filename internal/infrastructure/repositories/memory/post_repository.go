package memory

import (
	"context"
	"sync"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryPostRepository struct {
	posts map[domain.PostID]*domain.Post
	mu    sync.RWMutex
}

func NewMemoryPostRepository() ports.PostRepository {
	return &MemoryPostRepository{
		posts: make(map[domain.PostID]*domain.Post),
	}
}

func (r *MemoryPostRepository) Create(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *MemoryPostRepository) GetByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, domain.ErrPostNotFound
	}

	copied := *post
	return &copied, nil
}

func (r *MemoryPostRepository) Delete(ctx context.Context, id domain.PostID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[id]; !exists {
		return domain.ErrPostNotFound
	}

	delete(r.posts, id)
	return nil
}

type MemoryCommentRepository struct {
	comments map[domain.CommentID]*domain.Comment
	mu       sync.RWMutex
}

func NewMemoryCommentRepository() ports.CommentRepository {
	return &MemoryCommentRepository{
		comments: make(map[domain.CommentID]*domain.Comment),
	}
}

func (r *MemoryCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *MemoryCommentRepository) GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, exists := r.comments[id]
	if !exists {
		return nil, domain.ErrCommentNotFound
	}

	copied := *comment
	return &copied, nil
}

func (r *MemoryCommentRepository) Delete(ctx context.Context, id domain.CommentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.comments[id]; !exists {
		return domain.ErrCommentNotFound
	}

	delete(r.comments, id)
	return nil
}

type MemoryLikeRepository struct {
	likes map[domain.LikeID]*domain.Like
	mu    sync.RWMutex
}

func NewMemoryLikeRepository() ports.LikeRepository {
	return &MemoryLikeRepository{
		likes: make(map[domain.LikeID]*domain.Like),
	}
}

func (r *MemoryLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.likes {
		if existing.PostID == like.PostID && existing.UserID == like.UserID {
			return domain.ErrAlreadyExists
		}
	}

	stored := *like
	r.likes[like.ID] = &stored
	return nil
}

func (r *MemoryLikeRepository) Find(ctx context.Context, postID domain.PostID, userID domain.UserID) (*domain.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, like := range r.likes {
		if like.PostID == postID && like.UserID == userID {
			copied := *like
			return &copied, nil
		}
	}
	return nil, domain.ErrLikeNotFound
}

func (r *MemoryLikeRepository) Delete(ctx context.Context, id domain.LikeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.likes[id]; !exists {
		return domain.ErrLikeNotFound
	}

	delete(r.likes, id)
	return nil
}
