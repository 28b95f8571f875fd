package ports

import (
	"context"
	"time"

	"alumninet/internal/core/domain"
)

// SignupInput carries validated signup fields.
type SignupInput struct {
	Username  string
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

// UpdateUserInput carries validated profile updates. Nil pointers mean the
// field is left unchanged.
type UpdateUserInput struct {
	Firstname           *string
	Lastname            *string
	Password            *string
	AvatarURL           *string
	Bio                 *string
	Company             *string
	CompanyLocation     *string
	Industry            *string
	FieldOfStudy        *string
	GraduationStartYear *int
	GraduationEndYear   *int
	Location            *string
}

type UserService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Signin(ctx context.Context, username, password string) (*domain.User, error)
	Update(ctx context.Context, id domain.UserID, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id domain.UserID) error
}

type PostService interface {
	CreatePost(ctx context.Context, authorID domain.UserID, content string, mediaURLs []string) (*domain.Post, error)
	DeletePost(ctx context.Context, principal domain.UserID, id domain.PostID) error
	AddComment(ctx context.Context, authorID domain.UserID, postID domain.PostID, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, principal domain.UserID, postID domain.PostID, commentID domain.CommentID) error
	LikePost(ctx context.Context, userID domain.UserID, postID domain.PostID) (*domain.Like, error)
	UnlikePost(ctx context.Context, userID domain.UserID, postID domain.PostID) error
}

type ConnectionService interface {
	Request(ctx context.Context, followerID, followingID domain.UserID) (*domain.Connection, error)
	Accept(ctx context.Context, principal domain.UserID, id domain.ConnectionID) (*domain.Connection, error)
	Reject(ctx context.Context, principal domain.UserID, id domain.ConnectionID) (*domain.Connection, error)
	ListConnections(ctx context.Context, userID domain.UserID) (followers, followings []domain.ConnectionView, err error)
}

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID domain.UserID, content, attachment string) (*domain.Message, error)
	ListConversation(ctx context.Context, principal, other domain.UserID) ([]*domain.Message, error)
}

// CreateEventInput carries validated event fields.
type CreateEventInput struct {
	Title   string
	Content string
	Images  []string
	Link    string
	Date    time.Time
}

type EventService interface {
	Create(ctx context.Context, ownerID domain.UserID, in CreateEventInput) (*domain.Event, error)
	Upcoming(ctx context.Context) ([]*domain.Event, error)
	Past(ctx context.Context) ([]*domain.Event, error)
	Delete(ctx context.Context, principal domain.UserID, id domain.EventID) error
}

type FeedbackService interface {
	Create(ctx context.Context, authorID domain.UserID, content, attachedFile string) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
	Delete(ctx context.Context, principal domain.UserID, id domain.FeedbackID) error
}

// JobInput carries validated job fields, used for both create and update.
type JobInput struct {
	Title       string
	Company     string
	Experience  string
	Location    string
	JobType     string
	Industry    string
	JobFunction string
	Remote      string
}

type JobService interface {
	Create(ctx context.Context, in JobInput) (*domain.Job, error)
	Get(ctx context.Context, id domain.JobID) (*domain.Job, error)
	Update(ctx context.Context, id domain.JobID, in JobInput) (*domain.Job, error)
	Delete(ctx context.Context, id domain.JobID) error
	List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error)
}

type DonationService interface {
	Create(ctx context.Context, donorID domain.UserID, amount float64, currency string) (*domain.Donation, error)
	List(ctx context.Context) ([]*domain.Donation, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type StoryService interface {
	Create(ctx context.Context, authorID domain.UserID, title, description string) (*domain.Story, error)
	ListPublished(ctx context.Context) ([]*domain.Story, error)
	// SetPublished requires the principal to hold the ADMIN role.
	SetPublished(ctx context.Context, principal domain.UserID, id domain.StoryID, published bool) (*domain.Story, error)
}

type NetworkService interface {
	Search(ctx context.Context, query string) ([]domain.Profile, error)
	Filter(ctx context.Context, filter domain.ProfileFilter) ([]domain.Profile, error)
}
