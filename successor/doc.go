// Package successor implements the successor generator (C6): for each
// available rover, it enumerates every one of the ten action kinds in
// the fixed order of §4.6 (recharge, sample_soil, sample_rock,
// calibrate/take_image, communicate_soil/rock/image, drop, navigate),
// guards each candidate with a cheap static shortcut before paying for
// a full Apply, and returns the transitions that actually applied.
//
// This enumeration order is part of the engine's externally observable
// behaviour: it determines the order children of the same parent are
// pushed onto the frontier, and therefore which plan a given run
// produces among several equal-cost alternatives (§5).
//
// Generate is intentionally pure — it knows nothing of the closed set,
// the frontier, or the heuristic. Routing each transition through
// dedup (closed) and priority (heuristic) before pushing onto the
// frontier is the search driver's job (package search), not this one's;
// keeping them separate avoids a package import cycle between the node
// arena's owner and its generator.
package successor
