package search

import (
	"time"

	"go.uber.org/zap"

	"github.com/nikts27/thesis-rover-planner/closed"
	"github.com/nikts27/thesis-rover-planner/distance"
	"github.com/nikts27/thesis-rover-planner/frontier"
	"github.com/nikts27/thesis-rover-planner/heuristic"
	"github.com/nikts27/thesis-rover-planner/state"
	"github.com/nikts27/thesis-rover-planner/successor"
)

// Driver runs the best-first search engine (C7) over a single problem.
// It owns the node arena, the frontier, and the closed set for the
// duration of one Run call; none of it is safe to share across
// concurrent Run calls (§5: single-threaded and sequential by design).
type Driver struct {
	log  *zap.Logger
	opts Options
}

// New returns a Driver. log may be nil, in which case a no-op logger is
// used (the teacher's convention of never dereferencing a nil *zap.Logger).
func New(log *zap.Logger, opts ...Option) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{log: log, opts: resolve(opts...)}
}

// run holds the mutable state of a single Run call: the node arena, the
// frontier, the closed set, and the distance oracle shared read-only by
// every node. Splitting this out of Driver mirrors dijkstra.go's
// runner/Dijkstra split — the public entry point validates and sets up,
// the runner carries out the loop.
type run struct {
	log     *zap.Logger
	opts    Options
	goal    *state.Goal
	oracle  *distance.Oracle
	arena   []node
	front   *frontier.Frontier
	closed  *closed.Set
	stats   Stats
	started time.Time
}

// Run precomputes the distance oracle, seeds the root node, and executes
// the main loop of §4.7 until a goal is found, the frontier empties, or
// a resource limit (timeout, node cap) is exceeded.
func (d *Driver) Run(initial *state.State, goal *state.Goal) (*Plan, Stats, error) {
	oracle, err := distance.Build(initial.Static)
	if err != nil {
		return nil, Stats{}, ErrDistanceOracle
	}

	r := &run{
		log:     d.log,
		opts:    d.opts,
		goal:    goal,
		oracle:  oracle,
		arena:   make([]node, 0, 4096),
		front:   frontier.New(),
		closed:  closed.NewSet(),
		started: time.Now(),
	}

	root := node{state: *initial, parent: -1, depth: 0, g: 0}
	root.h = heuristic.Estimate(&root.state, goal, oracle)
	r.closed.Insert(&root.state)
	r.arena = append(r.arena, root)
	r.front.Push(r.evalF(0), 0)
	r.stats.NodesGenerated = 1

	plan, err := r.loop()
	r.stats.Elapsed = int64(time.Since(r.started))
	return plan, r.stats, err
}

// evalF returns the evaluation value of arena node id under the
// configured Method: f=h for Satisficing, f=g+h for Optimal.
func (r *run) evalF(id int32) int64 {
	n := &r.arena[id]
	if r.opts.method == Optimal {
		return n.g + n.h
	}
	return n.h
}

// loop is the main best-first search loop of §4.7.
func (r *run) loop() (*Plan, error) {
	var lastCheck int64
	for {
		if r.front.Empty() {
			r.log.Info("search exhausted without a solution",
				zap.Int64("nodesGenerated", r.stats.NodesGenerated),
				zap.Int64("nodesExpanded", r.stats.NodesExpanded))
			return nil, ErrNoSolution
		}

		_, id := r.front.Pop()
		n := &r.arena[id]

		if state.IsGoal(&n.state, r.goal) {
			r.log.Info("solution found",
				zap.Int64("totalEnergy", n.g),
				zap.Int32("length", n.depth))
			return r.reconstruct(id), nil
		}

		r.expand(id)
		r.stats.NodesExpanded++
		if f := r.front.Len(); f > r.stats.PeakFrontierSize {
			r.stats.PeakFrontierSize = f
		}

		if r.stats.NodesGenerated-lastCheck >= int64(r.opts.timeoutChunk) {
			lastCheck = r.stats.NodesGenerated
			if r.opts.timeout > 0 && time.Since(r.started) > r.opts.timeout {
				r.log.Warn("search timed out", zap.Duration("timeout", r.opts.timeout))
				return nil, ErrTimeout
			}
		}
		if r.opts.nodeLimit > 0 && r.stats.NodesGenerated >= r.opts.nodeLimit {
			r.log.Warn("search aborted: node limit exceeded", zap.Int64("limit", r.opts.nodeLimit))
			return nil, ErrNodeLimitExceeded
		}
	}
}

// expand generates id's children via C6, routes each through the
// closed set for dedup and through the heuristic for priority, and
// pushes surviving children onto the frontier, in the fixed
// enumeration order of §4.6.
func (r *run) expand(id int32) {
	parent := &r.arena[id]
	transitions := successor.Generate(&parent.state, r.goal)

	for _, t := range transitions {
		r.stats.NodesGenerated++
		next := t.Next
		if !r.closed.Insert(&next) {
			r.stats.NodesDeduped++
			continue
		}

		child := node{
			state:  next,
			parent: id,
			action: Action{Kind: t.Kind, Params: t.Params},
			g:      parent.g + t.EnergySpent,
			depth:  parent.depth + 1,
		}
		child.h = heuristic.Estimate(&child.state, r.goal, r.oracle)

		childID := int32(len(r.arena))
		r.arena = append(r.arena, child)
		r.front.Push(r.evalF(childID), childID)
	}
}

// reconstruct walks the parent chain from goal node id back to the root,
// collecting actions in reverse, then reverses the result into
// execution order.
func (r *run) reconstruct(id int32) *Plan {
	var steps []PlanStep
	for cur := id; cur >= 0; cur = r.arena[cur].parent {
		n := &r.arena[cur]
		if n.parent < 0 {
			break // root carries no action
		}
		steps = append(steps, PlanStep{
			Action: n.action,
			G:      n.g,
			H:      n.h,
			F:      r.evalF(cur),
		})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	goalNode := &r.arena[id]
	return &Plan{
		Steps:         steps,
		TotalEnergy:   goalNode.g,
		TotalRecharge: goalNode.state.Recharges,
		Length:        len(steps),
	}
}
