package search

import (
	"github.com/nikts27/thesis-rover-planner/state"
)

// Method selects the search driver's evaluation function (§4.7,
// "satisficing" vs "optimal" in the planning spec's terms).
type Method int

const (
	// Satisficing sets f := h, trading optimality for speed: the first
	// goal node popped is returned, not necessarily the cheapest.
	Satisficing Method = iota
	// Optimal sets f := g + h (classic A*), returned only once g+h is
	// provably minimal thanks to h's admissibility.
	Optimal
)

// String gives the CLI spelling of m ("best" or "astar").
func (m Method) String() string {
	if m == Optimal {
		return "astar"
	}
	return "best"
}

// Action names the ground action that produced a node, in the form the
// solution writer needs to render a line of the plan.
type Action struct {
	Kind   state.ActionKind
	Params state.Params
}

// node is one entry in the driver's arena. Parent is a negative index
// for the root and otherwise an index into the same arena — the
// "[]Node with integer parent indices" arena design: parent chains are
// never pointers, so the whole arena can be discarded as one slice once
// a Plan has been extracted.
type node struct {
	state  state.State
	parent int32
	action Action
	g      int64
	h      int64
	depth  int32
}

// PlanStep is one action in a reconstructed plan, carrying the g/h/f
// annotations the solution writer prints alongside each action line.
type PlanStep struct {
	Action Action
	G      int64
	H      int64
	F      int64
}

// Plan is a fully reconstructed solution: an ordered action sequence
// plus the summary statistics the solution writer's header lines need.
type Plan struct {
	Steps         []PlanStep
	TotalEnergy   int64
	TotalRecharge int64
	Length        int
}

// Stats reports engine-internal counters for a single Run call,
// independent of whether a solution was found.
type Stats struct {
	NodesGenerated   int64
	NodesExpanded    int64
	NodesDeduped     int64
	PeakFrontierSize int
	Elapsed          int64 // nanoseconds
}
