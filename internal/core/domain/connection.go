package domain

import "time"

type ConnectionID string

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "PENDING"
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
	ConnectionRejected ConnectionStatus = "REJECTED"
)

// Connection is a directed follow edge. It is created PENDING and may move
// to ACCEPTED or REJECTED exactly once, only by the followed user. There is
// no transition out of a terminal status.
type Connection struct {
	ID          ConnectionID     `json:"id"`
	FollowerID  UserID           `json:"followerId"`
	FollowingID UserID           `json:"followingId"`
	Status      ConnectionStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ConnectionView pairs an accepted edge with the user on its far side.
type ConnectionView struct {
	Connection Connection `json:"connection"`
	User       Profile    `json:"user"`
}
