package domain

import "time"

type StoryID string

// Story is a success story. Only published stories are listed publicly;
// publication is an admin-only operation.
type Story struct {
	ID          StoryID   `json:"id"`
	AuthorID    UserID    `json:"authorId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
