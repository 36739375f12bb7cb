package problem

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nikts27/thesis-rover-planner/internal/topology"
	"github.com/nikts27/thesis-rover-planner/state"
)

// navigateCost mirrors the fixed Navigate energy cost used by the search
// driver's distance oracle (distance.Build); kept duplicated here (rather
// than imported) to avoid a problem->search->distance dependency edge for
// what is only a diagnostic probe.
const navigateCost int64 = 8

// Validate runs the fail-closed post-parse consistency checks against pr,
// then a set of non-fatal connectivity diagnostics logged through log
// (which may be nil). A non-nil error means the problem must not be
// handed to the search driver.
func Validate(pr *ParseResult, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	if err := validateRoverPositions(pr.State); err != nil {
		return err
	}
	if err := validateCameraTargets(pr.State.Static); err != nil {
		return err
	}
	if !pr.HadGoalSection {
		return ErrMissingGoalSection
	}
	if err := validateMutualVisibility(pr.State.Static); err != nil {
		return err
	}

	diagnoseCommReachability(pr.State, log)
	diagnoseLanderVisibility(pr.State.Static, log)
	diagnoseTraversalIsolation(pr.State, log)

	return nil
}

func validateRoverPositions(s *state.State) error {
	st := s.Static
	for r := 0; r < st.NumRovers; r++ {
		pos := s.Rovers[r].Position
		if pos < 0 || pos >= st.NumWaypoints {
			return fmt.Errorf("%w: rover%d at waypoint index %d", ErrRoverPositionOutOfRange, r, pos)
		}
	}
	return nil
}

func validateCameraTargets(st *state.Static) error {
	for c := 0; c < st.NumCameras; c++ {
		if st.CameraCalibrationTargets[c] == 0 {
			return fmt.Errorf("%w: camera%d", ErrCameraWithoutCalibrationTarget, c)
		}
	}
	return nil
}

// validateMutualVisibility requires that every traversal edge a rover
// holds is backed by visibility in both directions — a stricter check
// than Apply's own precondition (which only reads from.visible_waypoints
// ∋ to), catching problem data that would make navigate inconsistent with
// the distance oracle's graph construction.
func validateMutualVisibility(st *state.Static) error {
	for r := 0; r < st.NumRovers; r++ {
		for from := 0; from < st.NumWaypoints; from++ {
			for to := 0; to < st.NumWaypoints; to++ {
				if from == to || !st.RoverCanTraverse[r][from].Has(to) {
					continue
				}
				if !st.WaypointVisible[from].Has(to) || !st.WaypointVisible[to].Has(from) {
					return fmt.Errorf("%w: rover%d waypoint%d<->waypoint%d", ErrAsymmetricTraversal, r, from, to)
				}
			}
		}
	}
	return nil
}

// traversalGraph builds the directed graph rover r can navigate: an edge
// from->to wherever r.can_traverse and from sees to, matching
// distance/oracle.go's own per-rover graph construction.
func traversalGraph(st *state.Static, r int) *topology.Graph {
	g := topology.NewGraph(st.NumWaypoints, true)
	for from := 0; from < st.NumWaypoints; from++ {
		for to := 0; to < st.NumWaypoints; to++ {
			if from == to || !st.RoverCanTraverse[r][from].Has(to) || !st.WaypointVisible[from].Has(to) {
				continue
			}
			g.AddEdge(from, to, navigateCost)
		}
	}
	return g
}

// diagnoseCommReachability runs a cheap per-rover single-source shortest
// path probe — ahead of the search driver's full Floyd-Warshall precompute
// — warning when a rover cannot reach any waypoint visible to the lander
// at all.
func diagnoseCommReachability(s *state.State, log *zap.Logger) {
	st := s.Static
	commPoints := make([]int, 0, st.NumWaypoints)
	for w := 0; w < st.NumWaypoints; w++ {
		if st.WaypointVisible[w].Has(st.LanderPosition) {
			commPoints = append(commPoints, w)
		}
	}

	for r := 0; r < st.NumRovers; r++ {
		dist := topology.SingleSource(traversalGraph(st, r), s.Rovers[r].Position)
		reachable := false
		for _, w := range commPoints {
			if _, ok := dist[w]; ok {
				reachable = true
				break
			}
		}
		if !reachable {
			log.Warn("rover cannot reach any waypoint visible to the lander",
				zap.Int("rover", r), zap.Int("position", s.Rovers[r].Position))
		}
	}
}

// diagnoseLanderVisibility warns about waypoints with no visibility chain
// back to the lander at all, walking the visibility graph backwards from
// the lander's position via breadth-first search.
func diagnoseLanderVisibility(st *state.Static, log *zap.Logger) {
	g := topology.NewGraph(st.NumWaypoints, true)
	for from := 0; from < st.NumWaypoints; from++ {
		for to := 0; to < st.NumWaypoints; to++ {
			if from != to && st.WaypointVisible[from].Has(to) {
				// reversed: a BFS rooted at the lander walks backwards
				// along visibility, reaching exactly the waypoints that
				// have a (possibly transitive) visibility path to it.
				g.AddEdge(to, from, 0)
			}
		}
	}

	depth := topology.BFSDepths(g, st.LanderPosition)
	for w := 0; w < st.NumWaypoints; w++ {
		if w == st.LanderPosition {
			continue
		}
		if _, ok := depth[w]; !ok {
			log.Warn("waypoint has no visibility chain back to the lander", zap.Int("waypoint", w))
		}
	}
}

// diagnoseTraversalIsolation warns when a rover's starting waypoint has no
// outgoing traversal edges at all, using a single-source depth-first walk
// over the rover's own can_traverse graph.
func diagnoseTraversalIsolation(s *state.State, log *zap.Logger) {
	st := s.Static
	for r := 0; r < st.NumRovers; r++ {
		g := topology.NewGraph(st.NumWaypoints, true)
		for from := 0; from < st.NumWaypoints; from++ {
			for to := 0; to < st.NumWaypoints; to++ {
				if from != to && st.RoverCanTraverse[r][from].Has(to) {
					g.AddEdge(from, to, 0)
				}
			}
		}

		order := topology.DFSOrder(g, s.Rovers[r].Position)
		if len(order) <= 1 && st.NumWaypoints > 1 {
			log.Warn("rover has no outgoing traversal edges from its starting waypoint",
				zap.Int("rover", r), zap.Int("position", s.Rovers[r].Position))
		}
	}
}
