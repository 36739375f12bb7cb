package successor

import "github.com/nikts27/thesis-rover-planner/state"

// Transition is one applicable ground action discovered from a state:
// the action itself, the resulting state, and the energy it cost.
type Transition struct {
	Kind        state.ActionKind
	Params      state.Params
	Next        state.State
	EnergySpent int64
}

// Generate enumerates every applicable ground action from s in the
// fixed §4.6 order and returns the resulting transitions. goal is
// needed because several actions (sample_soil, sample_rock, take_image,
// communicate_*) are only ever useful — and only ever applicable,
// per their preconditions — when they progress an outstanding goal.
func Generate(s *state.State, goal *state.Goal) []Transition {
	st := s.Static
	out := make([]Transition, 0, 16)

	try := func(kind state.ActionKind, p state.Params) {
		next, cost, ok := state.Apply(*s, kind, p, goal)
		if ok {
			out = append(out, Transition{Kind: kind, Params: p, Next: next, EnergySpent: cost})
		}
	}

	for r := 0; r < st.NumRovers; r++ {
		rv := &s.Rovers[r]
		if !rv.Available {
			continue
		}
		p := rv.Position

		generateRecharge(s, goal, try, r, p)
		generateSampleSoil(s, goal, try, r, p)
		generateSampleRock(s, goal, try, r, p)
		generateCalibrateAndImage(s, goal, try, r, p)
		generateCommunicate(s, goal, try, r, p)
		generateDrop(s, try, r)
		generateNavigate(s, try, r, p)
	}
	return out
}

type tryFunc func(kind state.ActionKind, p state.Params)

// generateRecharge covers §4.6 step 1.
func generateRecharge(s *state.State, _ *state.Goal, try tryFunc, r, p int) {
	if !inRange(p, s.Static.NumWaypoints) {
		return
	}
	rv := &s.Rovers[r]
	if s.Waypoints[p].InSun && rv.Energy < 8 {
		try(state.Recharge, state.Params{Rover: r, Waypoint: p})
	}
}

// generateSampleSoil covers §4.6 step 2: one candidate per empty store
// owned by r.
func generateSampleSoil(s *state.State, goal *state.Goal, try tryFunc, r, p int) {
	st := s.Static
	rv := &s.Rovers[r]
	if !rv.EquippedSoil || rv.Energy < 3 || !goal.CommunicatedSoilData.Has(p) ||
		s.Waypoints[p].CommunicatedSoil || !s.Waypoints[p].HasSoilSample {
		return
	}
	for sIdx := 0; sIdx < st.NumStores; sIdx++ {
		if st.StoreRoverID[sIdx] == r && !s.Stores[sIdx].IsFull {
			try(state.SampleSoil, state.Params{Rover: r, Store: sIdx, Waypoint: p})
		}
	}
}

// generateSampleRock covers §4.6 step 3, symmetric to step 2.
func generateSampleRock(s *state.State, goal *state.Goal, try tryFunc, r, p int) {
	st := s.Static
	rv := &s.Rovers[r]
	if !rv.EquippedRock || rv.Energy < 5 || !goal.CommunicatedRockData.Has(p) ||
		s.Waypoints[p].CommunicatedRock || !s.Waypoints[p].HasRockSample {
		return
	}
	for sIdx := 0; sIdx < st.NumStores; sIdx++ {
		if st.StoreRoverID[sIdx] == r && !s.Stores[sIdx].IsFull {
			try(state.SampleRock, state.Params{Rover: r, Store: sIdx, Waypoint: p})
		}
	}
}

// generateCalibrateAndImage covers §4.6 step 4: every calibrate
// candidate across the rover's cameras and objectives, then every
// take_image candidate across cameras, objectives, and modes.
func generateCalibrateAndImage(s *state.State, goal *state.Goal, try tryFunc, r, p int) {
	st := s.Static
	rv := &s.Rovers[r]
	if !rv.EquippedImaging {
		return
	}

	for c := 0; c < st.NumCameras; c++ {
		if st.CameraRoverID[c] != r {
			continue
		}
		for o := 0; o < st.NumObjectives; o++ {
			if st.CameraCalibrationTargets[c].Has(o) && st.ObjectiveVisible[o].Has(p) {
				try(state.Calibrate, state.Params{Rover: r, Camera: c, Objective: o, Waypoint: p})
			}
		}
	}

	for c := 0; c < st.NumCameras; c++ {
		if st.CameraRoverID[c] != r || !s.Cameras[c].Calibrated {
			continue
		}
		for o := 0; o < st.NumObjectives; o++ {
			if !st.ObjectiveVisible[o].Has(p) {
				continue
			}
			for mi := 0; mi < state.MaxModes; mi++ {
				m := state.Mode(mi)
				if st.CameraModesSupported[c].Has(m) && goal.CommunicatedImageData[o].Has(m) &&
					!s.Objectives[o].CommunicatedImage.Has(m) {
					try(state.TakeImage, state.Params{Rover: r, Waypoint: p, Objective: o, Camera: c, Mode: m})
				}
			}
		}
	}
}

// generateCommunicate covers §4.6 step 5: communicate_soil,
// communicate_rock, communicate_image, in that order.
func generateCommunicate(s *state.State, goal *state.Goal, try tryFunc, r, p int) {
	st := s.Static
	rv := &s.Rovers[r]
	if !s.Lander.ChannelFree || !st.WaypointVisible[p].Has(st.LanderPosition) {
		return
	}

	for w := 0; w < st.NumWaypoints; w++ {
		if rv.HasSoilAnalysis.Has(w) {
			try(state.CommunicateSoil, state.Params{Rover: r, SampleWaypoint: w, RoverWaypoint: p, LanderWaypoint: st.LanderPosition})
		}
	}
	for w := 0; w < st.NumWaypoints; w++ {
		if rv.HasRockAnalysis.Has(w) {
			try(state.CommunicateRock, state.Params{Rover: r, SampleWaypoint: w, RoverWaypoint: p, LanderWaypoint: st.LanderPosition})
		}
	}
	for o := 0; o < st.NumObjectives; o++ {
		for mi := 0; mi < state.MaxModes; mi++ {
			m := state.Mode(mi)
			if rv.HaveImage[o].Has(m) {
				try(state.CommunicateImage, state.Params{Rover: r, Objective: o, Mode: m, RoverWaypoint: p, LanderWaypoint: st.LanderPosition})
			}
		}
	}
}

// generateDrop covers §4.6 step 6: every full store owned by r.
func generateDrop(s *state.State, try tryFunc, r int) {
	st := s.Static
	for sIdx := 0; sIdx < st.NumStores; sIdx++ {
		if st.StoreRoverID[sIdx] == r && s.Stores[sIdx].IsFull {
			try(state.Drop, state.Params{Rover: r, Store: sIdx})
		}
	}
}

// generateNavigate covers §4.6 step 7: every reachable neighbour.
func generateNavigate(s *state.State, try tryFunc, r, p int) {
	st := s.Static
	rv := &s.Rovers[r]
	if rv.Energy < 8 || !inRange(p, st.NumWaypoints) {
		return
	}
	for to := 0; to < st.NumWaypoints; to++ {
		if to == p {
			continue
		}
		if st.WaypointVisible[p].Has(to) && st.RoverCanTraverse[r][p].Has(to) {
			try(state.Navigate, state.Params{Rover: r, From: p, To: to})
		}
	}
}

func inRange(i, n int) bool { return i >= 0 && i < n }
