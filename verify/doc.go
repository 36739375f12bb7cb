// Package verify re-simulates a parsed solution.Solution against a
// problem's initial state via state.Apply, reporting the first
// inapplicable action's line number and exiting with a non-zero status
// from its caller. It is a post-hoc structural check: it never searches,
// it only replays.
package verify
