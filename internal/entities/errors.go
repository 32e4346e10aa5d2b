// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrConflict signals that a signup could not be applied to an existing activity.
	ErrConflict = errors.New("signup conflict")
	// ErrAlreadySignedUp refines ErrConflict: the email is already a participant.
	ErrAlreadySignedUp = fmt.Errorf("%w: already signed up", ErrConflict)
	// ErrActivityFull refines ErrConflict: the activity reached max participants.
	ErrActivityFull = fmt.Errorf("%w: activity is full", ErrConflict)
	// ErrNotSignedUp signals removal of an email that is not a participant.
	ErrNotSignedUp = errors.New("not signed up")
	// ErrOperationFailed signals that the store reported no change despite passing preconditions.
	ErrOperationFailed = errors.New("operation failed")
)
