package topology

// Inf is the "no path" sentinel returned by ShortestPaths. It is kept well
// below math.MaxInt64 so summing several unreachable distances together
// cannot overflow.
const Inf int64 = int64(1) << 40

// ShortestPaths computes all-pairs shortest paths over g via Floyd-Warshall:
// dist[i][j] starts at g's direct edge weight (Inf if none, 0 on the
// diagonal), then relaxes through every intermediate vertex k in a fixed
// k->i->j loop order for deterministic accumulation.
func ShortestPaths(g *Graph) [][]int64 {
	n := g.N()
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = Inf
			}
		}
	}
	for from := 0; from < n; from++ {
		for _, e := range g.Neighbors(from) {
			if e.Weight < dist[from][e.To] {
				dist[from][e.To] = e.Weight
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] >= Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] >= Inf {
					continue
				}
				if cand := dist[i][k] + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}
	return dist
}
