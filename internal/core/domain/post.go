package domain

import "time"

type PostID string

type CommentID string

type LikeID string

type Post struct {
	ID        PostID    `json:"id"`
	AuthorID  UserID    `json:"authorId"`
	Content   string    `json:"content"`
	MediaURLs []string  `json:"mediaUrls,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        CommentID `json:"id"`
	PostID    PostID    `json:"postId"`
	AuthorID  UserID    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Like is the (post, user) edge created by liking a post. At most one edge
// may exist per pair.
type Like struct {
	ID        LikeID    `json:"id"`
	PostID    PostID    `json:"postId"`
	UserID    UserID    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
