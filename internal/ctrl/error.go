package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

var (
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrCodeUsed        = errors.New("code already used")
	ErrUnknownEmail    = errors.New("no active user with this email")
	ErrTokenExpired    = errors.New("password reset token expired")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrUnknownPlan     = errors.New("subscription plan does not exist")
	ErrNoScreening     = errors.New("no account screening found for this user")
	ErrScreeningQueued = errors.New("account screening is not yet approved")
	ErrUserInactive    = errors.New("user is not active")
)
