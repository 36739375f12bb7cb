// Package heuristic implements H4 (C5): the admissible lower bound the
// search driver uses to order the frontier.
//
// Estimate combines three steps (§4.5): a relaxed per-goal travel+action
// cost for every (goal, rover) pairing, a descending-cost greedy pass
// that assigns at most one task per rover, and a recharge lower bound
// (travel-to-sunlight only, never the recharge itself) for any rover
// whose assigned task costs more energy than it currently holds. Each
// step is a sum of independent lower bounds, which is what keeps the
// whole estimate admissible.
package heuristic
