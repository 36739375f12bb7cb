package topology

import "math/rand"

// RandomComplete builds the undirected complete graph K_n with each edge
// {i,j}, i<j, assigned an independent uniform integer weight in
// [minWeight, maxWeight] from a deterministic seeded source.
func RandomComplete(n int, seed int64, minWeight, maxWeight int64) *Graph {
	g := NewGraph(n, false)
	rng := rand.New(rand.NewSource(seed))
	span := maxWeight - minWeight + 1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j, minWeight+rng.Int63n(span))
		}
	}
	return g
}
