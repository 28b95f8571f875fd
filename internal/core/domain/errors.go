package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrStoryNotFound      = errors.New("story not found")
	ErrLikeNotFound       = errors.New("like not found")

	// ErrAlreadyExists is returned by repositories when an insert violates
	// a uniqueness rule (duplicate username/email, like or connection edge).
	ErrAlreadyExists = errors.New("already exists")
)
