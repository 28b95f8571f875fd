package ports

import (
	"context"

	"alumninet/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id domain.UserID) error
	Search(ctx context.Context, query string) ([]domain.Profile, error)
	Filter(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id domain.PostID) (*domain.Post, error)
	Delete(ctx context.Context, id domain.PostID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error)
	Delete(ctx context.Context, id domain.CommentID) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Find(ctx context.Context, postID domain.PostID, userID domain.UserID) (*domain.Like, error)
	Delete(ctx context.Context, id domain.LikeID) error
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *domain.Connection) error
	GetByID(ctx context.Context, id domain.ConnectionID) (*domain.Connection, error)
	// Find looks up the edge with the exact ordered (follower, following)
	// pair, regardless of status.
	Find(ctx context.Context, followerID, followingID domain.UserID) (*domain.Connection, error)
	UpdateStatus(ctx context.Context, id domain.ConnectionID, status domain.ConnectionStatus) (*domain.Connection, error)
	ListFollowers(ctx context.Context, userID domain.UserID) ([]*domain.Connection, error)
	ListFollowing(ctx context.Context, userID domain.UserID) ([]*domain.Connection, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// ListConversation returns all messages exchanged between the two users
	// in either direction, oldest first.
	ListConversation(ctx context.Context, a, b domain.UserID) ([]*domain.Message, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id domain.EventID) (*domain.Event, error)
	Delete(ctx context.Context, id domain.EventID) error
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
	ListPast(ctx context.Context) ([]*domain.Event, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	GetByID(ctx context.Context, id domain.FeedbackID) (*domain.Feedback, error)
	Delete(ctx context.Context, id domain.FeedbackID) error
	List(ctx context.Context) ([]*domain.Feedback, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id domain.JobID) error
	List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error)
}

type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) error
	List(ctx context.Context) ([]*domain.Donation, error)
	// Leaderboard returns donor IDs with their donation totals, largest
	// total first, at most limit entries.
	Leaderboard(ctx context.Context, limit int) ([]domain.UserID, []float64, error)
}

type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) error
	GetByID(ctx context.Context, id domain.StoryID) (*domain.Story, error)
	SetPublished(ctx context.Context, id domain.StoryID, published bool) (*domain.Story, error)
	ListPublished(ctx context.Context) ([]*domain.Story, error)
}
