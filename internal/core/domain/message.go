package domain

import "time"

type MessageID string

// Message is a direct message between two users. Either Content or
// Attachment must be set; both empty is invalid.
type Message struct {
	ID         MessageID `json:"id"`
	SenderID   UserID    `json:"senderId"`
	ReceiverID UserID    `json:"receiverId"`
	Content    string    `json:"content,omitempty"`
	Attachment string    `json:"attachment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
