package verify

import (
	"github.com/nikts27/thesis-rover-planner/solution"
	"github.com/nikts27/thesis-rover-planner/state"
)

// Report is the outcome of replaying a solution against an initial
// state: the final state reached, and whether the goal held there.
type Report struct {
	Final       state.State
	GoalReached bool
	// TotalEnergy and TotalRecharge mirror search.Plan's accounting,
	// recomputed from the replay rather than trusted from the solution
	// file's own h=/f= annotations (those are search diagnostics, not
	// plan invariants).
	TotalEnergy   int64
	TotalRecharge int64
}

// Run replays sol against initial/goal, applying each action line via
// state.Apply in order. It stops at the first action whose
// preconditions do not hold in the state reached so far, returning an
// *Error naming that line (1-based, counting the solution file's two
// header lines, so the first action line is 3).
func Run(initial *state.State, goal *state.Goal, sol *solution.Solution) (*Report, error) {
	current := *initial
	var totalEnergy, totalRecharge int64

	for i, line := range sol.Lines {
		lineNo := i + 3 // two header lines precede the first action.
		next, spent, ok := state.Apply(current, line.Kind, line.Params, goal)
		if !ok {
			return nil, &Error{Line: lineNo, Err: ErrInapplicableAction}
		}
		current = next
		totalEnergy += spent
		totalRecharge = current.Recharges
	}

	reached := state.IsGoal(&current, goal)
	report := &Report{
		Final:         current,
		GoalReached:   reached,
		TotalEnergy:   totalEnergy,
		TotalRecharge: totalRecharge,
	}
	if !reached {
		lastLine := len(sol.Lines) + 2
		return report, &Error{Line: lastLine, Err: ErrGoalNotReached}
	}
	return report, nil
}
