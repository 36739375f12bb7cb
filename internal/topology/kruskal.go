package topology

import (
	"errors"
	"sort"
)

// ErrDisconnected is returned by MST when g has more than one vertex and no
// spanning tree connects them all.
var ErrDisconnected = errors.New("topology: graph is disconnected")

// MST computes a minimum spanning tree of the undirected weighted graph g
// via Kruskal's algorithm: sort edges ascending by weight, then union two
// endpoints' components whenever they differ, using union-find with path
// compression and union by rank. Returns ErrDisconnected if fewer than
// n-1 edges could be added.
func MST(g *Graph) ([]Edge, int64, error) {
	n := g.N()
	if n <= 1 {
		return nil, 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	var find func(v int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	mst := make([]Edge, 0, n-1)
	var totalWeight int64
	for _, e := range edges {
		if find(e.From) == find(e.To) {
			continue
		}
		union(e.From, e.To)
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, totalWeight, nil
}
