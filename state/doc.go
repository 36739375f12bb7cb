// Package state implements the Rover domain's world model: Rover, Waypoint,
// Camera, Store, Objective, Lander, State, and Goal, along with the ten
// ground-action semantics (preconditions, effects, energy cost) and the
// goal test.
//
// State is deliberately a flat value type over fixed-size arrays sized by
// the domain's static caps (MaxRovers, MaxWaypoints, ...). Applying an
// action clones the current State (a plain struct copy, no allocation of
// sub-objects) and mutates the clone; the caller never mutates a State in
// place. Fields that are read-only after parsing (traversal rights,
// visibility, camera ownership, lander position) live in a separate
// Static record shared by pointer across every clone, so copying a State
// never touches them.
package state
