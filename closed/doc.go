// Package closed implements the search engine's closed set (C3):
// duplicate detection over a canonicalized, deliberately lossy state
// fingerprint.
//
// The fingerprint packs only the semantically relevant fields of a
// state (§4.3): rover positions and energy, sampling/imaging progress,
// per-waypoint predicates, camera calibration, store fullness, per-
// objective communicated-image progress (collapsed over modes), and the
// recharge counter. Two states that agree on every packed field are
// treated as equal even if they differ in some other respect — this is
// an intentional approximation the spec calls out explicitly, and this
// package preserves it rather than tightening it.
package closed
