package problem

import (
	"go.uber.org/zap"

	"github.com/nikts27/thesis-rover-planner/state"
)

// ParseOptions configures Parse. Use DefaultParseOptions rather than the
// zero value.
type ParseOptions struct {
	Logger *zap.Logger
}

// ParseOption mutates a ParseOptions value.
type ParseOption func(*ParseOptions)

// DefaultParseOptions returns a no-op logger; the file format itself has
// no tunables.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Logger: zap.NewNop()}
}

// WithLogger injects a logger for parse-time diagnostics. A nil log is
// ignored (the default no-op logger is kept).
func WithLogger(log *zap.Logger) ParseOption {
	return func(o *ParseOptions) {
		if log != nil {
			o.Logger = log
		}
	}
}

// ParseResult is everything Parse produces from a problem file.
type ParseResult struct {
	State *state.State
	Goal  *state.Goal

	// HadGoalSection distinguishes a missing :goal section (a Validate
	// failure) from one that is present but names no atoms at all — the
	// "no goals" boundary case, whose plan is the empty sequence.
	HadGoalSection bool
}
