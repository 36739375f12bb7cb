// Package solution serializes and parses the two-header-line solution
// file format: "Solution length: N", "Total recharges uses: K", followed
// by one "( action param... ) h=H f=F" line per step. Write renders a
// search.Plan; Read parses a file back into an action list the verify
// package re-simulates against a problem's initial state.
package solution
