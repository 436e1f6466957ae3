package payrun

import "fmt"

// Status is the pay run lifecycle state. States are totally ordered and
// monotonic: draft -> reviewing -> approved -> finalised, no skips, no
// reversals. A finalised run is permanently immutable.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusFinalised Status = "finalised"
)

// transitions is the single source of truth for legal lifecycle moves.
// Every entry point checks here; nothing compares status strings inline.
var transitions = map[Status]Status{
	StatusDraft:     StatusReviewing,
	StatusReviewing: StatusApproved,
	StatusApproved:  StatusFinalised,
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// CheckTransition returns a state-conflict error naming the current and
// required states when the move is illegal.
func CheckTransition(from, to Status) error {
	if !CanTransition(from, to) {
		required := "none"
		for candidate, next := range transitions {
			if next == to {
				required = string(candidate)
			}
		}
		return &StateConflictError{Current: from, Required: required, Attempted: to}
	}
	return nil
}

// Editable reports whether run/line fields may still be mutated. Edits are
// allowed in draft and reviewing only.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusReviewing
}

// StateConflictError identifies the run's current state versus the state the
// requested transition needs.
type StateConflictError struct {
	Current   Status
	Required  string
	Attempted Status
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("pay run is %s, must be %s to move to %s", e.Current, e.Required, e.Attempted)
}
