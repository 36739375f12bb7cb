// Package fixtures generates synthetic Rover-domain problems for the
// property-based admissibility test in the heuristic package. Generate
// builds a connected waypoint topology via topology.MST over a seeded
// topology.RandomComplete candidate graph; GenerateGrid lays waypoints
// out on a Rows x Cols 4-connected grid instead, for a topology shaped
// unlike the random-sparse one. Both return a solvable problem:
// soil-equipped rovers, one soil sample, and the goal of communicating
// it, so search.Driver.Run can actually reach a plan to
// compare against the heuristic's estimate at the initial state.
package fixtures
