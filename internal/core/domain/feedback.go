package domain

import "time"

type FeedbackID string

type Feedback struct {
	ID           FeedbackID `json:"id"`
	AuthorID     UserID     `json:"authorId"`
	Content      string     `json:"content"`
	AttachedFile string     `json:"attachedFile,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
