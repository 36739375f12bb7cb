// Package frontier implements the search engine's priority frontier: a
// binary min-heap keyed by evaluation value f, carrying opaque node
// handles (an integer index into the search package's node arena).
//
// Ties on f are broken by insertion order (FIFO): the node pushed first
// among equal-f nodes is popped first, which keeps repeated runs over
// the same problem reproducible regardless of Go's map/slice iteration
// order elsewhere in the engine.
package frontier
