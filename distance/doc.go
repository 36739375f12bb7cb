// Package distance implements the shortest-path oracle (C4): all-pairs
// minimum-energy travel per rover over the traversal+visibility graph.
//
// For each rover a directed graph is built over waypoints, edge u→v
// existing iff the rover has traversal rights from u to v and u sees v,
// with the uniform navigate edge weight. All-pairs shortest paths are
// computed once, up front, by Floyd-Warshall, and never recomputed
// during search (Static is read-only after parse, so the table is too).
package distance
