package heuristic

import (
	"sort"

	"github.com/nikts27/thesis-rover-planner/distance"
	"github.com/nikts27/thesis-rover-planner/state"
)

// Inf is the heuristic's saturation sentinel, inherited from the
// distance oracle's own notion of "unreachable".
const Inf = distance.Inf

// candidate is one (task, rover) relaxed-cost pairing considered by the
// greedy one-task-per-rover assignment of step 2.
type candidate struct {
	cost  int64
	rover int
	task  int // index into the fixed goal-enumeration order, for determinism
}

// candidateOrder sorts candidates by descending cost (most expensive
// task first, per §4.5 step 2), ties broken by ascending task then
// ascending rover. Grounded on tsp/bb.go's neighborOrder: a dedicated
// sort.Interface with an explicit index tiebreak rather than a
// throwaway sort.Slice closure.
type candidateOrder []candidate

func (o candidateOrder) Len() int { return len(o) }

func (o candidateOrder) Less(i, j int) bool {
	if o[i].cost != o[j].cost {
		return o[i].cost > o[j].cost
	}
	if o[i].task != o[j].task {
		return o[i].task < o[j].task
	}
	return o[i].rover < o[j].rover
}

func (o candidateOrder) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Estimate computes an admissible lower bound on the additional energy
// needed to satisfy goal from s, per §4.5.
func Estimate(s *state.State, goal *state.Goal, oracle *distance.Oracle) int64 {
	if state.IsGoal(s, goal) {
		return 0
	}

	cands, ok := collectCandidates(s, goal, oracle)
	if !ok {
		return Inf
	}
	sort.Sort(candidateOrder(cands))

	used := make([]bool, s.Static.NumRovers)
	assignedCost := make([]int64, s.Static.NumRovers)
	var hTasks int64
	for _, c := range cands {
		if used[c.rover] {
			continue
		}
		used[c.rover] = true
		assignedCost[c.rover] = c.cost
		hTasks = saturatingAdd(hTasks, c.cost)
	}

	var hEnergy int64
	for r := 0; r < s.Static.NumRovers; r++ {
		if !used[r] || assignedCost[r] <= s.Rovers[r].Energy {
			continue
		}
		best := Inf
		for w := 0; w < s.Static.NumWaypoints; w++ {
			if !s.Waypoints[w].InSun {
				continue
			}
			if d := oracle.Dist(r, s.Rovers[r].Position, w); d < best {
				best = d
			}
		}
		if best >= Inf {
			return Inf
		}
		hEnergy = saturatingAdd(hEnergy, best)
	}

	h := saturatingAdd(hTasks, hEnergy)
	if h < 0 {
		h = 0
	}
	return h
}

// collectCandidates enumerates every unfulfilled goal in the fixed
// order soil-by-waypoint, rock-by-waypoint, image-by-(objective, mode),
// and for each one every rover's relaxed cost to contribute to it. ok is
// false if some unfulfilled goal has no rover able to contribute to it.
func collectCandidates(s *state.State, goal *state.Goal, oracle *distance.Oracle) ([]candidate, bool) {
	st := s.Static
	cands := make([]candidate, 0, st.NumRovers*4)
	task := 0

	for w := 0; w < st.NumWaypoints; w++ {
		if !goal.CommunicatedSoilData.Has(w) || s.Waypoints[w].CommunicatedSoil {
			continue
		}
		before := len(cands)
		for r := 0; r < st.NumRovers; r++ {
			if c, ok := soilCost(s, oracle, r, w); ok {
				cands = append(cands, candidate{cost: c, rover: r, task: task})
			}
		}
		if len(cands) == before {
			return nil, false
		}
		task++
	}
	for w := 0; w < st.NumWaypoints; w++ {
		if !goal.CommunicatedRockData.Has(w) || s.Waypoints[w].CommunicatedRock {
			continue
		}
		before := len(cands)
		for r := 0; r < st.NumRovers; r++ {
			if c, ok := rockCost(s, oracle, r, w); ok {
				cands = append(cands, candidate{cost: c, rover: r, task: task})
			}
		}
		if len(cands) == before {
			return nil, false
		}
		task++
	}
	for o := 0; o < st.NumObjectives; o++ {
		for mi := 0; mi < state.MaxModes; mi++ {
			m := state.Mode(mi)
			if !goal.CommunicatedImageData[o].Has(m) || s.Objectives[o].CommunicatedImage.Has(m) {
				continue
			}
			before := len(cands)
			for r := 0; r < st.NumRovers; r++ {
				if c, ok := imageCost(s, oracle, r, o, m); ok {
					cands = append(cands, candidate{cost: c, rover: r, task: task})
				}
			}
			if len(cands) == before {
				return nil, false
			}
			task++
		}
	}
	return cands, true
}

// saturatingAdd adds a and b, clamping the result at Inf so that a chain
// of additions involving an unreachable sub-cost can never wrap past
// the sentinel back into a deceptively small finite value.
func saturatingAdd(a, b int64) int64 {
	if a >= Inf || b >= Inf {
		return Inf
	}
	sum := a + b
	if sum >= Inf {
		return Inf
	}
	return sum
}
