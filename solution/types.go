package solution

import "github.com/nikts27/thesis-rover-planner/state"

// ActionLine is one parsed line of a solution file: the ground action it
// names, plus the h/f annotations that followed it.
type ActionLine struct {
	Kind   state.ActionKind
	Params state.Params
	H, F   int64
}

// Solution is a fully parsed solution file.
type Solution struct {
	Length         int
	TotalRecharges int64
	Lines          []ActionLine
}
