package domain

import "time"

type DonationID string

type Donation struct {
	ID        DonationID `json:"id"`
	DonorID   UserID     `json:"donorId"`
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LeaderboardEntry is one row of the donation leaderboard: a donor and the
// sum of their donations.
type LeaderboardEntry struct {
	Donor       Profile `json:"donor"`
	TotalAmount float64 `json:"totalAmount"`
}
