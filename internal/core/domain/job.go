package domain

import "time"

type JobID string

type Job struct {
	ID          JobID     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Experience  string    `json:"experience"`
	Location    string    `json:"location"`
	JobType     string    `json:"jobType"`
	Industry    string    `json:"industry"`
	JobFunction string    `json:"jobFunction"`
	Remote      string    `json:"remote"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JobFilter narrows job listings. Empty fields are not filtered.
// Title, company, industry and job function match substrings case
// insensitively; experience, job type and remote match exactly.
type JobFilter struct {
	Title       string
	Company     string
	Experience  string
	Location    string
	JobType     string
	Industry    string
	JobFunction string
	Remote      string
}
