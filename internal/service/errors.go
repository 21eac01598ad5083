package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParameters  = errors.New("missing parameters")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	// ErrInvalidData is returned for values that exceed their stored bounds.
	ErrInvalidData = errors.New("invalid data")

	ErrDuplicateEmail    = errors.New("email already has an account")
	ErrDuplicateUsername = errors.New("username already has an account")

	// ErrUnauthorized covers bad credentials, unknown tokens and ownership
	// mismatches alike.
	ErrUnauthorized = errors.New("unauthorized")

	ErrNotEditable     = errors.New("not editable")
	ErrUserNotEditable = fmt.Errorf("user %w", ErrNotEditable)
	ErrRoomNotEditable = fmt.Errorf("room %w", ErrNotEditable)

	ErrNotFound        = errors.New("not found")
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
	ErrPhotoNotFound   = fmt.Errorf("photo %w", ErrNotFound)

	ErrPhotoLimitExceeded = errors.New("photo limit exceeded")

	// ErrUpstreamUnavailable wraps failures of the database and the photo
	// storage. Callers may retry.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	ErrPasswordUnchanged = errors.New("new password equals the previous one")
	ErrResetTokenExpired = errors.New("reset token expired")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

func upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
