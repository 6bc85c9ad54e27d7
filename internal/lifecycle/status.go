package lifecycle

import (
	"errors"
	"fmt"
)

// Status is the position of a transfer in its lifecycle.
type Status string

const (
	StatusSubmitted        Status = "SUBMITTED"
	StatusInTransit        Status = "IN_TRANSIT"
	StatusFlagged          Status = "FLAGGED_AWAITING_CLEARANCE"
	StatusClearanceGranted Status = "CLEARANCE_GRANTED"
	StatusConverting       Status = "CONVERTING"
	StatusFundsArrived     Status = "FUNDS_ARRIVED"
)

var (
	ErrUnknownStatus     = errors.New("unknown transaction status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusSubmitted,
	StatusInTransit,
	StatusFlagged,
	StatusClearanceGranted,
	StatusConverting,
	StatusFundsArrived,
}

// transitions holds every allowed edge. The only branch is the clearance
// gate out of IN_TRANSIT.
var transitions = map[Status][]Status{
	StatusSubmitted:        {StatusInTransit},
	StatusInTransit:        {StatusFlagged, StatusConverting},
	StatusFlagged:          {StatusClearanceGranted},
	StatusClearanceGranted: {StatusConverting},
	StatusConverting:       {StatusFundsArrived},
	StatusFundsArrived:     nil,
}

// timed holds the edges a timer may take on its own. FLAGGED has none: only
// an explicit authorization leaves it.
var timed = map[Status]Status{
	StatusSubmitted:        StatusInTransit,
	StatusInTransit:        StatusConverting,
	StatusClearanceGranted: StatusConverting,
	StatusConverting:       StatusFundsArrived,
}

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusFundsArrived
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// CanTransition reports whether from -> to is an allowed edge.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to.
func Transition(from, to Status) error {
	if !from.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// NextTimed returns the status a timer moves s to, if any.
func NextTimed(s Status) (Status, bool) {
	next, ok := timed[s]
	return next, ok
}
