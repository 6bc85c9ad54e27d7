package lifecycle

import (
	"time"
)

// TransferMethod selects the arrival estimate for a transfer.
type TransferMethod string

const (
	TransferStandard TransferMethod = "standard"
	TransferWire     TransferMethod = "wire"
)

const (
	standardArrival = 3 * 24 * time.Hour
	wireArrival     = 2 * 24 * time.Hour
)

// EstimateArrival returns when funds are expected. A scheduled transfer
// arrives three days after its scheduled date.
func EstimateArrival(method TransferMethod, createdAt time.Time, scheduledFor *time.Time) time.Time {
	if scheduledFor != nil && !scheduledFor.IsZero() {
		return scheduledFor.Add(standardArrival)
	}
	if method == TransferWire {
		return createdAt.Add(wireArrival)
	}
	return createdAt.Add(standardArrival)
}

// Delays are the dwell times of the timed transitions.
type Delays struct {
	Transit time.Duration
	Convert time.Duration
	Arrival time.Duration
}

// DefaultDelays match the simulated pacing of the portal.
var DefaultDelays = Delays{
	Transit: 5 * time.Second,
	Convert: 30 * time.Second,
	Arrival: 30 * time.Second,
}

// Dwell returns how long a transfer stays in s before its timed transition.
func (d Delays) Dwell(s Status) (time.Duration, bool) {
	switch s {
	case StatusSubmitted:
		return d.Transit, true
	case StatusInTransit, StatusClearanceGranted:
		return d.Convert, true
	case StatusConverting:
		return d.Arrival, true
	default:
		return 0, false
	}
}

// Due decides whether the timed transition out of current may fire at now.
// It returns the next status and OutcomeApplied when due, OutcomeNotDue when
// the dwell has not elapsed, and OutcomeNotEligible when current has no
// timed exit.
func (d Delays) Due(current Status, stamps StatusTimestamps, now time.Time) (Status, Outcome) {
	next, ok := NextTimed(current)
	if !ok {
		return "", OutcomeNotEligible
	}
	dwell, _ := d.Dwell(current)
	entered, ok := stamps.EnteredAt(current)
	if !ok {
		return next, OutcomeApplied
	}
	if now.Before(entered.Add(dwell)) {
		return "", OutcomeNotDue
	}
	return next, OutcomeApplied
}
