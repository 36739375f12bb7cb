package distance

import (
	"github.com/nikts27/thesis-rover-planner/internal/topology"
	"github.com/nikts27/thesis-rover-planner/state"
)

// navigateCost is the uniform edge weight used for every traversal edge,
// matching the Navigate action's fixed energy cost (action table Id 0).
const navigateCost int64 = 8

// Inf is the sentinel "unreachable" distance, reexported from topology so
// callers never need to import it directly.
const Inf = topology.Inf

// Oracle answers all-pairs shortest-path queries, one table per rover,
// precomputed once from Static by Build.
type Oracle struct {
	static      *state.Static
	dist        [state.MaxRovers][state.MaxWaypoints][state.MaxWaypoints]int64
	isCommPoint state.Bitmap32 // waypoints that directly see the lander
}

// Build precomputes the shortest-path table for every rover in st. It is
// called exactly once by the search driver before the root node is
// pushed onto the frontier (§4.7).
func Build(st *state.Static) (*Oracle, error) {
	o := &Oracle{static: st}
	for w := 0; w < st.NumWaypoints; w++ {
		if st.WaypointVisible[w].Has(st.LanderPosition) {
			o.isCommPoint = o.isCommPoint.With(w)
		}
	}
	for r := 0; r < st.NumRovers; r++ {
		o.buildRover(st, r)
	}
	return o, nil
}

// buildRover fills o.dist[r] by running Floyd-Warshall over the
// traversal+visibility graph for rover r.
func (o *Oracle) buildRover(st *state.Static, r int) {
	g := topology.NewGraph(st.NumWaypoints, true)
	for from := 0; from < st.NumWaypoints; from++ {
		for to := 0; to < st.NumWaypoints; to++ {
			if from == to {
				continue
			}
			if !st.RoverCanTraverse[r][from].Has(to) || !st.WaypointVisible[from].Has(to) {
				continue
			}
			g.AddEdge(from, to, navigateCost)
		}
	}

	dist := topology.ShortestPaths(g)
	for from := 0; from < st.NumWaypoints; from++ {
		copy(o.dist[r][from][:st.NumWaypoints], dist[from])
	}
}

// Dist returns rover r's minimum travel energy from waypoint from to
// waypoint to, or Inf if unreachable.
func (o *Oracle) Dist(rover, from, to int) int64 {
	if from == to {
		return 0
	}
	return o.dist[rover][from][to]
}

// NearestCommPoint returns the waypoint reachable by rover r from from
// (possibly from itself) whose visibility set includes the lander,
// minimizing travel distance. ok is false if no such waypoint is
// reachable.
func (o *Oracle) NearestCommPoint(rover, from int) (waypoint int, ok bool) {
	best := Inf
	bestW := -1
	for w := 0; w < o.static.NumWaypoints; w++ {
		if !o.isCommPoint.Has(w) {
			continue
		}
		d := o.Dist(rover, from, w)
		if d < best {
			best = d
			bestW = w
		}
	}
	if bestW < 0 {
		return 0, false
	}
	return bestW, true
}
