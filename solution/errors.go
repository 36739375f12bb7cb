package solution

import "errors"

var (
	// ErrMalformedHeader indicates one of the two fixed header lines is
	// missing or does not parse as "<label>: <integer>".
	ErrMalformedHeader = errors.New("solution: malformed header line")
	// ErrMalformedActionLine indicates an action line is missing its
	// h=/f= annotations or has too few tokens to be any action.
	ErrMalformedActionLine = errors.New("solution: malformed action line")
	// ErrUnknownActionName indicates an action line's first token does
	// not match any of the ten canonical action names.
	ErrUnknownActionName = errors.New("solution: unknown action name")
	// ErrMalformedParam indicates a parameter token has no trailing
	// integer, or a mode token does not match a known mode name.
	ErrMalformedParam = errors.New("solution: malformed action parameter")
)
