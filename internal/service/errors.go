package service

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrInvalidInput      = errors.New("invalid input")
	ErrTransient         = errors.New("temporary storage failure")
)

// InsufficientSeatsError carries the availability observed under the row lock
// so callers can report how many seats were actually left.
type InsufficientSeatsError struct {
	Available int
	Requested int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough seats available: %d requested, %d left", e.Requested, e.Available)
}

func (e *InsufficientSeatsError) Is(target error) bool {
	return target == ErrInsufficientSeats
}

// transient marks a storage-layer failure as retryable. The transaction has
// been rolled back, so retrying is side-effect free.
func transient(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransient, op, err)
}
