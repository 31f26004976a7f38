package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOptionNotFound    = errors.New("estimate option not found")
	ErrInvoicePaid       = errors.New("invoice is paid")
	ErrInvoiceVoided     = errors.New("invoice is void")
	ErrEstimateClosed    = errors.New("estimate is closed")
)

// TransitionError reports an illegal (from, to) status pair. It matches ErrInvalidTransition.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: illegal transition %s -> %s", e.Entity, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// Pair renders the attempted transition as "from -> to".
func (e *TransitionError) Pair() string { return e.From + " -> " + e.To }
