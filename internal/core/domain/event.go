package domain

import "time"

type EventID string

type Event struct {
	ID        EventID   `json:"id"`
	OwnerID   UserID    `json:"ownerId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
	Link      string    `json:"link,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
