package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shopping list domain. Use errors.Is() to check these.
var (
	// ErrValidation is the parent of every input rejection.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID indicates a path or body identifier is not a UUID.
	ErrInvalidID = fmt.Errorf("%w: invalid identifier", ErrValidation)

	// ErrReminderInPast indicates a reminder was scheduled at or before the current instant.
	ErrReminderInPast = fmt.Errorf("%w: cannot schedule reminder in the past", ErrValidation)

	// ErrListNotFound indicates the shopping list does not exist. Services return it
	// only when the list is a dependency (adding an item, scheduling a reminder).
	ErrListNotFound = errors.New("shopping list not found")

	// ErrItemNotFound indicates the item does not exist under the given list.
	ErrItemNotFound = errors.New("item not found")

	// ErrReminderNotFound indicates the reminder does not exist.
	ErrReminderNotFound = errors.New("reminder not found")
)

// FieldError rejects a single input field. It unwraps to Err, or to
// ErrValidation when Err is nil.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// InvalidField returns a FieldError for field.
func InvalidField(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// InvalidID returns a FieldError wrapping ErrInvalidID for the named parameter.
func InvalidID(param string) error {
	return &FieldError{Field: param, Reason: "Must be a valid UUID", Err: ErrInvalidID}
}
