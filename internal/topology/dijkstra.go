package topology

import "container/heap"

// nodeItem pairs a vertex with its current tentative distance from the
// source. Stored in a min-heap ordered by dist ascending.
type nodeItem struct {
	vertex int
	dist   int64
}

// nodePQ is a lazy-decrease-key min-heap: relaxing a vertex pushes a fresh
// entry rather than mutating one in place, and stale entries are dropped
// when popped (checked against visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// SingleSource returns, for every vertex reachable from source, its
// minimum-weight distance; unreachable vertices are omitted. Edge weights
// are assumed non-negative.
func SingleSource(g *Graph, source int) map[int]int64 {
	dist := make(map[int]int64, g.N())
	visited := make(map[int]bool, g.N())

	pq := make(nodePQ, 0, g.N())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{vertex: source, dist: 0})
	dist[source] = 0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			newDist := dist[u] + e.Weight
			if cur, ok := dist[e.To]; ok && newDist >= cur {
				continue
			}
			dist[e.To] = newDist
			heap.Push(&pq, &nodeItem{vertex: e.To, dist: newDist})
		}
	}
	return dist
}
