package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/nikts27/thesis-rover-planner/internal/topology"
	"github.com/nikts27/thesis-rover-planner/state"
)

// Config controls the shape of a generated Rover problem.
type Config struct {
	NumWaypoints  int
	NumRovers     int
	NumStores     int
	ExtraEdgeProb float64 // probability a non-spanning-tree candidate edge is also kept
	Seed          int64
}

// DefaultConfig returns a small, always-solvable problem shape.
func DefaultConfig() Config {
	return Config{
		NumWaypoints:  6,
		NumRovers:     2,
		NumStores:     2,
		ExtraEdgeProb: 0.3,
		Seed:          1,
	}
}

// Generate builds a random Rover problem over a guaranteed-connected
// waypoint topology: a candidate weighted complete graph is reduced to its
// minimum spanning tree via topology.MST (guaranteeing every waypoint
// reaches every other), then a random subset of the remaining candidate
// edges is added back for branching, each kept independently with
// probability cfg.ExtraEdgeProb. Visibility and traversal share the same
// edge set for every rover. Every rover is soil-equipped, one waypoint
// holds a soil sample, and communicating it is the sole goal atom; since
// every rover can reach every waypoint, the problem is always solvable.
func Generate(cfg Config) (*state.Static, *state.State, *state.Goal, error) {
	if cfg.NumWaypoints < 2 || cfg.NumWaypoints > state.MaxWaypoints {
		return nil, nil, nil, fmt.Errorf("fixtures: NumWaypoints=%d out of [2,%d]", cfg.NumWaypoints, state.MaxWaypoints)
	}
	if cfg.NumRovers < 1 || cfg.NumRovers > state.MaxRovers {
		return nil, nil, nil, fmt.Errorf("fixtures: NumRovers=%d out of [1,%d]", cfg.NumRovers, state.MaxRovers)
	}
	if cfg.NumStores < 1 || cfg.NumStores > state.MaxStores {
		return nil, nil, nil, fmt.Errorf("fixtures: NumStores=%d out of [1,%d]", cfg.NumStores, state.MaxStores)
	}

	topo, err := buildTopology(cfg.NumWaypoints, cfg.ExtraEdgeProb, cfg.Seed)
	if err != nil {
		return nil, nil, nil, err
	}
	return assemble(topo, cfg.NumWaypoints, cfg.NumRovers, cfg.NumStores, cfg.Seed)
}

// GridConfig controls a grid-shaped topology: waypoints laid out on a
// Rows x Cols 4-connected grid, every cell mutually visible to its
// orthogonal neighbors.
type GridConfig struct {
	Rows, Cols int
	NumRovers  int
	NumStores  int
	Seed       int64
}

// DefaultGridConfig returns a small 2x3 grid shape.
func DefaultGridConfig() GridConfig {
	return GridConfig{Rows: 2, Cols: 3, NumRovers: 2, NumStores: 2, Seed: 1}
}

// GenerateGrid builds a Rover problem whose waypoint topology is a
// Rows x Cols 4-connected grid instead of a random spanning tree: a grid
// laid out this way is unconditionally connected (every interior cell has
// up to four neighbors), so no separate spanning-tree step is needed.
// Waypoint indices run row-major: waypoint index = y*Cols + x.
func GenerateGrid(cfg GridConfig) (*state.Static, *state.State, *state.Goal, error) {
	n := cfg.Rows * cfg.Cols
	if n < 2 || n > state.MaxWaypoints {
		return nil, nil, nil, fmt.Errorf("fixtures: Rows*Cols=%d out of [2,%d]", n, state.MaxWaypoints)
	}
	if cfg.NumRovers < 1 || cfg.NumRovers > state.MaxRovers {
		return nil, nil, nil, fmt.Errorf("fixtures: NumRovers=%d out of [1,%d]", cfg.NumRovers, state.MaxRovers)
	}
	if cfg.NumStores < 1 || cfg.NumStores > state.MaxStores {
		return nil, nil, nil, fmt.Errorf("fixtures: NumStores=%d out of [1,%d]", cfg.NumStores, state.MaxStores)
	}

	topo := topology.NewGraph(n, false)
	for y := 0; y < cfg.Rows; y++ {
		for x := 0; x < cfg.Cols; x++ {
			here := y*cfg.Cols + x
			if x+1 < cfg.Cols {
				topo.AddEdge(here, here+1, 0)
			}
			if y+1 < cfg.Rows {
				topo.AddEdge(here, here+cfg.Cols, 0)
			}
		}
	}

	return assemble(topo, n, cfg.NumRovers, cfg.NumStores, cfg.Seed)
}

// buildTopology builds an n-waypoint graph guaranteed to be fully
// connected: Kruskal's MST over a random-weighted candidate complete
// graph, plus each other candidate edge independently kept with
// probability p.
func buildTopology(n int, p float64, seed int64) (*topology.Graph, error) {
	candidate := topology.RandomComplete(n, seed, 1, 100)

	mst, _, err := topology.MST(candidate)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}

	topo := topology.NewGraph(n, false)
	for _, e := range mst {
		topo.AddEdge(e.From, e.To, 0)
	}

	rng := rand.New(rand.NewSource(seed))
	for _, e := range candidate.Edges() {
		if topo.HasEdge(e.From, e.To) {
			continue
		}
		if rng.Float64() < p {
			topo.AddEdge(e.From, e.To, 0)
		}
	}
	return topo, nil
}

// assemble turns an already-connected, 0..n-1-vertex waypoint topology
// into a full Static/State/Goal triple: visibility and traversal both
// mirror topo's edges for every rover, one store per rover, a lander at a
// deterministic waypoint, and a single pending soil-sample-communication
// goal at the waypoint midway around the topology from the lander
// (arbitrary but deterministic).
func assemble(topo *topology.Graph, n, numRovers, numStores int, seed int64) (*state.Static, *state.State, *state.Goal, error) {
	st := &state.Static{NumRovers: numRovers, NumWaypoints: n, NumStores: numStores}

	for _, e := range topo.Edges() {
		st.WaypointVisible[e.From] = st.WaypointVisible[e.From].With(e.To)
		st.WaypointVisible[e.To] = st.WaypointVisible[e.To].With(e.From)
	}
	for r := 0; r < numRovers; r++ {
		for w := 0; w < n; w++ {
			st.RoverCanTraverse[r][w] = st.WaypointVisible[w]
		}
	}

	rng := rand.New(rand.NewSource(seed))
	st.LanderPosition = rng.Intn(n)
	for i := 0; i < numStores; i++ {
		st.StoreRoverID[i] = i % numRovers
	}

	s := &state.State{Static: st}
	s.Lander.ChannelFree = true
	for r := 0; r < numRovers; r++ {
		s.Rovers[r] = state.Rover{
			Position:     r % n,
			Energy:       int64(20 * n),
			Available:    true,
			EquippedSoil: true,
		}
	}

	sampleWaypoint := (st.LanderPosition + n/2) % n
	s.Waypoints[sampleWaypoint].HasSoilSample = true

	goal := &state.Goal{CommunicatedSoilData: state.Bitmap32(0).With(sampleWaypoint)}
	return st, s, goal, nil
}
