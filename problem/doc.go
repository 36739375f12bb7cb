// Package problem parses the Rover-domain problem file format into a
// state.State/state.Goal pair and validates the result against the
// fail-closed consistency checks (rover positions in range, cameras own at
// least one calibration target, a goal section is present, traversal
// implies mutual visibility). Non-fatal connectivity diagnostics are
// logged alongside validation via bfs/dfs/dijkstra reachability probes
// over the same waypoint graph the search driver's distance oracle uses.
package problem
