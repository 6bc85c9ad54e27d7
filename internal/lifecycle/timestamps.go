package lifecycle

import (
	"time"
)

// StatusTimestamps maps each status to the time it was first entered.
// Entries are only ever added; use With to stamp a new status.
type StatusTimestamps map[Status]time.Time

// NewStatusTimestamps starts a status map at SUBMITTED.
func NewStatusTimestamps(submittedAt time.Time) StatusTimestamps {
	return StatusTimestamps{StatusSubmitted: submittedAt}
}

// Clone returns an independent copy.
func (m StatusTimestamps) Clone() StatusTimestamps {
	out := make(StatusTimestamps, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// With returns a copy of m with status stamped at t. If status is already
// present, m is returned unchanged and ok is false.
func (m StatusTimestamps) With(status Status, t time.Time) (out StatusTimestamps, ok bool) {
	if _, exists := m[status]; exists {
		return m, false
	}
	out = m.Clone()
	out[status] = t
	return out, true
}

// EnteredAt returns when status was entered.
func (m StatusTimestamps) EnteredAt(status Status) (time.Time, bool) {
	t, ok := m[status]
	return t, ok
}

// Contains reports whether every entry of other is present in m with the
// same time.
func (m StatusTimestamps) Contains(other StatusTimestamps) bool {
	for k, v := range other {
		got, ok := m[k]
		if !ok || !got.Equal(v) {
			return false
		}
	}
	return true
}
