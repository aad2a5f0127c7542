// Package domain defines the room and guest-ledger entities together
// with the failure taxonomy shared by the services and the adapters.
// The sentinel values below let higher layers such as the menu
// distinguish between failure scenarios: lifecycle-precondition
// failures (ErrAlreadyBooked, ErrNotBooked, ErrAlreadyCheckedIn,
// ErrAlreadyFree) abort an operation without mutating state, while
// ErrRecordNotFound and ErrStoreUnavailable report a ledger divergence
// that does not undo an in-memory transition that already happened.
package domain

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound is returned when an operation targets a room number
// outside the inventory.
var ErrRoomNotFound = errors.New("room not found")

// ErrAlreadyBooked is returned when booking a room that is not free.
var ErrAlreadyBooked = errors.New("room already booked")

// ErrNotBooked is returned when checking in a room that is still free.
var ErrNotBooked = errors.New("room not booked")

// ErrAlreadyCheckedIn is returned when checking in a room twice.
var ErrAlreadyCheckedIn = errors.New("room already checked in")

// ErrAlreadyFree is returned when checking out a room that is free.
var ErrAlreadyFree = errors.New("room already free")

// ErrPaymentDeclined is returned when payment authorization fails.
// The room stays booked and no check-in time is recorded.
var ErrPaymentDeclined = errors.New("payment declined")

// ErrRecordNotFound is returned when a ledger update finds no line for
// the target room number.
var ErrRecordNotFound = errors.New("guest record not found")

// ErrStoreUnavailable is returned when the ledger file cannot be
// opened for reading or writing.
var ErrStoreUnavailable = errors.New("guest record store unavailable")

// ErrValidation is the common target wrapped by every ValidationError,
// so callers can match the whole class with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a single invalid guest-input field. The
// presentation layer re-prompts for the field and retries.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
