package search

import "errors"

var (
	// ErrNoSolution indicates the frontier emptied without reaching a
	// goal state — the problem is unsolvable from the given initial state.
	ErrNoSolution = errors.New("search: no solution found")
	// ErrTimeout indicates the wall-clock budget (Options.timeout)
	// elapsed before a solution was found.
	ErrTimeout = errors.New("search: timed out before finding a solution")
	// ErrNodeLimitExceeded indicates Options.nodeLimit generated nodes
	// were reached before a solution was found.
	ErrNodeLimitExceeded = errors.New("search: node limit exceeded before finding a solution")
	// ErrDistanceOracle indicates C4 could not be built from the
	// problem's static data.
	ErrDistanceOracle = errors.New("search: failed to build distance oracle")
)
