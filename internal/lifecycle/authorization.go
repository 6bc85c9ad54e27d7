package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// AuthorizationMethod is how a flagged transfer was cleared.
type AuthorizationMethod string

const (
	AuthorizationCode AuthorizationMethod = "code"
	AuthorizationFee  AuthorizationMethod = "fee"
)

var ErrInvalidAuthorizationMethod = errors.New("invalid authorization method")

// ParseAuthorizationMethod accepts "code" or "fee", case-insensitive.
func ParseAuthorizationMethod(raw string) (AuthorizationMethod, error) {
	switch m := AuthorizationMethod(strings.ToLower(strings.TrimSpace(raw))); m {
	case AuthorizationCode, AuthorizationFee:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAuthorizationMethod, raw)
	}
}

// Outcome is the typed result of a lifecycle command.
type Outcome int

const (
	// OutcomeApplied means the transition happened.
	OutcomeApplied Outcome = iota
	// OutcomeNotEligible means the transaction was not in a status the
	// command acts on. Nothing changed.
	OutcomeNotEligible
	// OutcomeNotDue means a timed transition exists but its delay has not
	// elapsed yet. Nothing changed.
	OutcomeNotDue
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNotEligible:
		return "not_eligible"
	case OutcomeNotDue:
		return "not_due"
	default:
		return "unknown"
	}
}
