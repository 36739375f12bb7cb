package verify

import (
	"errors"
	"fmt"
)

var (
	// ErrInapplicableAction indicates some action in the solution failed
	// its preconditions when replayed against the current state. The
	// returned *Error carries the offending line number.
	ErrInapplicableAction = errors.New("verify: inapplicable action")
	// ErrGoalNotReached indicates every action in the solution applied
	// cleanly, but the final state still does not satisfy the goal.
	ErrGoalNotReached = errors.New("verify: goal not reached after replay")
)

// Error wraps a verification failure with the 1-based line number of the
// solution file (header lines counted) that produced it, per §7's "the
// verifier reports the first inapplicable action's line number" contract.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}
