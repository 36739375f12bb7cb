// Package topology is a minimal waypoint-graph substrate: a fixed-size
// integer-vertex adjacency structure plus the handful of classic graph
// algorithms the Rover planner's ambient pieces need (all-pairs shortest
// paths for the distance oracle, single-source shortest paths, BFS/DFS
// reachability, and a weighted MST) — extracted and adapted from a
// general-purpose graph library down to exactly what those call sites use.
//
// Vertices are plain ints in [0, n); there is no separate Vertex type or
// string-ID indirection, since every caller already works in waypoint
// index space.
package topology

// Edge is a single weighted connection between two vertices.
type Edge struct {
	From, To int
	Weight   int64
}

// Graph is a fixed-size directed or undirected weighted graph over vertex
// indices [0, n). Adding an edge to an undirected graph mirrors it in both
// adjacency directions; Edges still reports each undirected edge once.
type Graph struct {
	n        int
	directed bool
	adj      [][]Edge
}

// NewGraph returns an empty graph over n vertices.
func NewGraph(n int, directed bool) *Graph {
	return &Graph{n: n, directed: directed, adj: make([][]Edge, n)}
}

// N reports the vertex count.
func (g *Graph) N() int { return g.n }

// AddEdge records a weighted edge from->to. For an undirected graph it also
// records the mirrored to->from edge.
func (g *Graph) AddEdge(from, to int, weight int64) {
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Weight: weight})
	}
}

// HasEdge reports whether an edge from->to was added.
func (g *Graph) HasEdge(from, to int) bool {
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// Neighbors returns v's outgoing edges.
func (g *Graph) Neighbors(v int) []Edge { return g.adj[v] }

// Edges returns every edge in the graph. For an undirected graph, each
// edge {u,v} is reported once (from the smaller endpoint's adjacency list).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0)
	for v := 0; v < g.n; v++ {
		for _, e := range g.adj[v] {
			if g.directed || e.From <= e.To {
				edges = append(edges, e)
			}
		}
	}
	return edges
}
