package frontier

import "container/heap"

// entry is one (priority, node) pair held by the frontier. seq is a
// monotonic insertion counter used purely as a tie-break: among entries
// with equal F, the one pushed first pops first (FIFO), so a given
// problem always produces the same plan run-to-run (§4.2, §5).
type entry struct {
	f      int64
	seq    uint64
	nodeID int32
}

// heapSlice implements container/heap.Interface, mirroring the
// teacher's nodePQ in dijkstra/dijkstra.go: a plain slice of entries,
// ordered by (f, seq) ascending.
type heapSlice []entry

func (h heapSlice) Len() int { return len(h) }

func (h heapSlice) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h heapSlice) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *heapSlice) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is the search engine's priority queue: a binary min-heap
// keyed by evaluation value F, carrying opaque node handles (indices
// into the search package's node arena). It grows dynamically as
// container/heap's backing slice reallocates; there is no fixed cap.
type Frontier struct {
	h    heapSlice
	next uint64
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{h: make(heapSlice, 0, 64)}
}

// Push inserts nodeID with priority f. Ties on f are broken by push
// order (the node pushed earlier pops first).
func (fr *Frontier) Push(f int64, nodeID int32) {
	heap.Push(&fr.h, entry{f: f, seq: fr.next, nodeID: nodeID})
	fr.next++
}

// Pop removes and returns the node with the smallest f. It panics if
// the frontier is empty; callers must check Empty first.
func (fr *Frontier) Pop() (f int64, nodeID int32) {
	e := heap.Pop(&fr.h).(entry)
	return e.f, e.nodeID
}

// Empty reports whether the frontier holds no nodes.
func (fr *Frontier) Empty() bool { return fr.h.Len() == 0 }

// Len reports the number of nodes currently held, for statistics
// (peak frontier size).
func (fr *Frontier) Len() int { return fr.h.Len() }
