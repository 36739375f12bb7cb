package heuristic

import (
	"github.com/nikts27/thesis-rover-planner/distance"
	"github.com/nikts27/thesis-rover-planner/state"
)

// soilCost computes rover r's relaxed cost for the "communicate soil at
// w" goal, or ok=false if r cannot contribute to it at all.
func soilCost(s *state.State, oracle *distance.Oracle, r, w int) (cost int64, ok bool) {
	rv := &s.Rovers[r]
	if rv.HasSoilAnalysis.Has(w) {
		cp, found := oracle.NearestCommPoint(r, rv.Position)
		if !found {
			return 0, false
		}
		return oracle.Dist(r, rv.Position, cp) + 4, true
	}
	if rv.EquippedSoil && s.Waypoints[w].HasSoilSample {
		travel := oracle.Dist(r, rv.Position, w)
		if travel >= distance.Inf {
			return 0, false
		}
		cp, found := oracle.NearestCommPoint(r, w)
		if !found {
			return 0, false
		}
		return travel + 3 + oracle.Dist(r, w, cp) + 4, true
	}
	return 0, false
}

// rockCost is soilCost's symmetric twin (sampling cost 5 instead of 3).
func rockCost(s *state.State, oracle *distance.Oracle, r, w int) (cost int64, ok bool) {
	rv := &s.Rovers[r]
	if rv.HasRockAnalysis.Has(w) {
		cp, found := oracle.NearestCommPoint(r, rv.Position)
		if !found {
			return 0, false
		}
		return oracle.Dist(r, rv.Position, cp) + 4, true
	}
	if rv.EquippedRock && s.Waypoints[w].HasRockSample {
		travel := oracle.Dist(r, rv.Position, w)
		if travel >= distance.Inf {
			return 0, false
		}
		cp, found := oracle.NearestCommPoint(r, w)
		if !found {
			return 0, false
		}
		return travel + 5 + oracle.Dist(r, w, cp) + 4, true
	}
	return 0, false
}

// imageCost computes rover r's relaxed cost for the "communicate image
// (o, m)" goal: already holding the image, or equipped with some
// camera supporting m, minimizing over every waypoint that can observe
// the objective.
func imageCost(s *state.State, oracle *distance.Oracle, r, o int, m state.Mode) (cost int64, ok bool) {
	st := s.Static
	rv := &s.Rovers[r]
	if rv.HaveImage[o].Has(m) {
		cp, found := oracle.NearestCommPoint(r, rv.Position)
		if !found {
			return 0, false
		}
		return oracle.Dist(r, rv.Position, cp) + 6, true
	}
	if !rv.EquippedImaging {
		return 0, false
	}
	hasCamera := false
	for c := 0; c < st.NumCameras; c++ {
		if st.CameraRoverID[c] == r && st.CameraModesSupported[c].Has(m) {
			hasCamera = true
			break
		}
	}
	if !hasCamera {
		return 0, false
	}

	best := distance.Inf
	found := false
	for sw := 0; sw < st.NumWaypoints; sw++ {
		if !st.ObjectiveVisible[o].Has(sw) {
			continue
		}
		travel := oracle.Dist(r, rv.Position, sw)
		if travel >= distance.Inf {
			continue
		}
		cp, cpFound := oracle.NearestCommPoint(r, sw)
		if !cpFound {
			continue
		}
		total := travel + 2 + 1 + oracle.Dist(r, sw, cp) + 6
		if total < best {
			best = total
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}
