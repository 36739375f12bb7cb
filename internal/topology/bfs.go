package topology

// BFSDepths runs breadth-first search from source, returning each reached
// vertex's distance (in edge hops) from it. The source itself is recorded
// at depth 0.
func BFSDepths(g *Graph, source int) map[int]int {
	depth := map[int]int{source: 0}
	queue := []int{source}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Neighbors(v) {
			if _, seen := depth[e.To]; seen {
				continue
			}
			depth[e.To] = depth[v] + 1
			queue = append(queue, e.To)
		}
	}
	return depth
}
