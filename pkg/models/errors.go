package models

import (
	"errors"
	"fmt"
)

// ErrNoteNotFound is returned when a note ID does not exist in a meeting.
var ErrNoteNotFound = errors.New("note not found")

// ErrMeetingNotFound is returned when a meeting ID is not in the collection.
var ErrMeetingNotFound = errors.New("meeting not found")

// ErrUserNotFound is returned when a user ID is not in the roster.
var ErrUserNotFound = errors.New("user not found")

// ValidationError reports a rejected field on entity creation or edit.
// It is surfaced to the caller and nothing is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
