package state

// Apply attempts to execute the ground action (kind, p) against current.
// On success it returns the resulting State, the energy spent (equal to
// the action's fixed cost except for Recharge, which costs 0 but
// restores energy), and true. On a precondition miss it returns the zero
// State, 0, and false — current is left untouched either way, since Go
// passes it by value.
//
// Every branch below mirrors one row of the action table in the planning
// spec exactly: bound checks first (so a malformed Params never indexes
// out of range), then the precondition conjuncts in the order listed,
// then the effects.
func Apply(current State, kind ActionKind, p Params, goal *Goal) (State, int64, bool) {
	st := current.Static

	switch kind {
	case Navigate:
		if !inRange(p.Rover, st.NumRovers) || !inRange(p.From, st.NumWaypoints) || !inRange(p.To, st.NumWaypoints) {
			return State{}, 0, false
		}
		r := &current.Rovers[p.Rover]
		if !r.Available || r.Energy < 8 {
			return State{}, 0, false
		}
		if !st.WaypointVisible[p.From].Has(p.To) {
			return State{}, 0, false
		}
		if !st.RoverCanTraverse[p.Rover][p.From].Has(p.To) {
			return State{}, 0, false
		}
		if r.Position != p.From || p.From == p.To {
			return State{}, 0, false
		}
		next := current.Clone()
		next.Rovers[p.Rover].Position = p.To
		next.Rovers[p.Rover].Energy -= 8
		return next, 8, true

	case Recharge:
		if !inRange(p.Rover, st.NumRovers) || !inRange(p.Waypoint, st.NumWaypoints) {
			return State{}, 0, false
		}
		r := &current.Rovers[p.Rover]
		w := &current.Waypoints[p.Waypoint]
		if !w.InSun || r.Position != p.Waypoint || r.Energy >= 8 {
			return State{}, 0, false
		}
		next := current.Clone()
		next.Rovers[p.Rover].Energy += 20
		next.Recharges++
		return next, 0, true

	case SampleSoil:
		return applySample(current, p, goal, true)

	case SampleRock:
		return applySample(current, p, goal, false)

	case Drop:
		if !inRange(p.Rover, st.NumRovers) || !inRange(p.Store, st.NumStores) {
			return State{}, 0, false
		}
		s := &current.Stores[p.Store]
		if st.StoreRoverID[p.Store] != p.Rover || !s.IsFull {
			return State{}, 0, false
		}
		next := current.Clone()
		next.Stores[p.Store].IsFull = false
		return next, 0, true

	case Calibrate:
		if !inRange(p.Rover, st.NumRovers) || !inRange(p.Camera, st.NumCameras) ||
			!inRange(p.Objective, st.NumObjectives) || !inRange(p.Waypoint, st.NumWaypoints) {
			return State{}, 0, false
		}
		r := &current.Rovers[p.Rover]
		if !r.EquippedImaging || r.Energy < 2 {
			return State{}, 0, false
		}
		if !st.CameraCalibrationTargets[p.Camera].Has(p.Objective) {
			return State{}, 0, false
		}
		if r.Position != p.Waypoint {
			return State{}, 0, false
		}
		if !st.ObjectiveVisible[p.Objective].Has(p.Waypoint) {
			return State{}, 0, false
		}
		if st.CameraRoverID[p.Camera] != p.Rover {
			return State{}, 0, false
		}
		next := current.Clone()
		next.Cameras[p.Camera].Calibrated = true
		next.Rovers[p.Rover].Energy -= 2
		return next, 2, true

	case TakeImage:
		if !inRange(p.Rover, st.NumRovers) || !inRange(p.Waypoint, st.NumWaypoints) ||
			!inRange(p.Objective, st.NumObjectives) || !inRange(p.Camera, st.NumCameras) {
			return State{}, 0, false
		}
		cam := &current.Cameras[p.Camera]
		r := &current.Rovers[p.Rover]
		if !cam.Calibrated || st.CameraRoverID[p.Camera] != p.Rover || !r.EquippedImaging {
			return State{}, 0, false
		}
		if !st.CameraModesSupported[p.Camera].Has(p.Mode) {
			return State{}, 0, false
		}
		if !st.ObjectiveVisible[p.Objective].Has(p.Waypoint) {
			return State{}, 0, false
		}
		if r.Position != p.Waypoint || r.Energy < 1 {
			return State{}, 0, false
		}
		if !goal.CommunicatedImageData[p.Objective].Has(p.Mode) {
			return State{}, 0, false
		}
		if current.Objectives[p.Objective].CommunicatedImage.Has(p.Mode) {
			return State{}, 0, false
		}
		next := current.Clone()
		next.Rovers[p.Rover].HaveImage[p.Objective] = next.Rovers[p.Rover].HaveImage[p.Objective].With(p.Mode)
		next.Cameras[p.Camera].Calibrated = false
		next.Rovers[p.Rover].Energy -= 1
		return next, 1, true

	case CommunicateSoil:
		return applyCommunicateSample(current, p, goal, true)

	case CommunicateRock:
		return applyCommunicateSample(current, p, goal, false)

	case CommunicateImage:
		if !inRange(p.Rover, st.NumRovers) || !inRange(p.Objective, st.NumObjectives) ||
			!inRange(p.RoverWaypoint, st.NumWaypoints) || !inRange(p.LanderWaypoint, st.NumWaypoints) {
			return State{}, 0, false
		}
		r := &current.Rovers[p.Rover]
		if !r.HaveImage[p.Objective].Has(p.Mode) {
			return State{}, 0, false
		}
		if !communicateGatesHold(current, p, r) {
			return State{}, 0, false
		}
		if r.Energy < 6 {
			return State{}, 0, false
		}
		if !goal.CommunicatedImageData[p.Objective].Has(p.Mode) {
			return State{}, 0, false
		}
		if current.Objectives[p.Objective].CommunicatedImage.Has(p.Mode) {
			return State{}, 0, false
		}
		next := current.Clone()
		next.Objectives[p.Objective].CommunicatedImage = next.Objectives[p.Objective].CommunicatedImage.With(p.Mode)
		next.Rovers[p.Rover].Energy -= 6
		return next, 6, true
	}

	return State{}, 0, false
}

// applySample implements SampleSoil (soil=true) and SampleRock (soil=false),
// which are precondition-for-precondition symmetric except for the
// predicate/bitmap/flag pair and the fixed cost (3 vs 5).
func applySample(current State, p Params, goal *Goal, soil bool) (State, int64, bool) {
	st := current.Static
	if !inRange(p.Rover, st.NumRovers) || !inRange(p.Store, st.NumStores) || !inRange(p.Waypoint, st.NumWaypoints) {
		return State{}, 0, false
	}
	r := &current.Rovers[p.Rover]
	w := &current.Waypoints[p.Waypoint]
	if r.Position != p.Waypoint {
		return State{}, 0, false
	}
	cost := int64(3)
	if !soil {
		cost = 5
	}
	if r.Energy < cost {
		return State{}, 0, false
	}
	hasSample := w.HasSoilSample
	equipped := r.EquippedSoil
	goalSet := goal.CommunicatedSoilData.Has(p.Waypoint)
	communicated := w.CommunicatedSoil
	if !soil {
		hasSample = w.HasRockSample
		equipped = r.EquippedRock
		goalSet = goal.CommunicatedRockData.Has(p.Waypoint)
		communicated = w.CommunicatedRock
	}
	if !hasSample || !equipped {
		return State{}, 0, false
	}
	if st.StoreRoverID[p.Store] != p.Rover || current.Stores[p.Store].IsFull {
		return State{}, 0, false
	}
	if !goalSet || communicated {
		return State{}, 0, false
	}

	next := current.Clone()
	next.Stores[p.Store].IsFull = true
	if soil {
		next.Rovers[p.Rover].HasSoilAnalysis = next.Rovers[p.Rover].HasSoilAnalysis.With(p.Waypoint)
		next.Waypoints[p.Waypoint].HasSoilSample = false
	} else {
		next.Rovers[p.Rover].HasRockAnalysis = next.Rovers[p.Rover].HasRockAnalysis.With(p.Waypoint)
		next.Waypoints[p.Waypoint].HasRockSample = false
	}
	next.Rovers[p.Rover].Energy -= cost
	return next, cost, true
}

// applyCommunicateSample implements CommunicateSoil (soil=true) and
// CommunicateRock (soil=false).
func applyCommunicateSample(current State, p Params, goal *Goal, soil bool) (State, int64, bool) {
	st := current.Static
	if !inRange(p.Rover, st.NumRovers) || !inRange(p.SampleWaypoint, st.NumWaypoints) ||
		!inRange(p.RoverWaypoint, st.NumWaypoints) || !inRange(p.LanderWaypoint, st.NumWaypoints) {
		return State{}, 0, false
	}
	r := &current.Rovers[p.Rover]
	hasAnalysis := r.HasSoilAnalysis.Has(p.SampleWaypoint)
	goalSet := goal.CommunicatedSoilData.Has(p.SampleWaypoint)
	communicated := current.Waypoints[p.SampleWaypoint].CommunicatedSoil
	if !soil {
		hasAnalysis = r.HasRockAnalysis.Has(p.SampleWaypoint)
		goalSet = goal.CommunicatedRockData.Has(p.SampleWaypoint)
		communicated = current.Waypoints[p.SampleWaypoint].CommunicatedRock
	}
	if !hasAnalysis {
		return State{}, 0, false
	}
	if !communicateGatesHold(current, p, r) {
		return State{}, 0, false
	}
	if r.Energy < 4 {
		return State{}, 0, false
	}
	if !goalSet || communicated {
		return State{}, 0, false
	}

	next := current.Clone()
	if soil {
		next.Waypoints[p.SampleWaypoint].CommunicatedSoil = true
	} else {
		next.Waypoints[p.SampleWaypoint].CommunicatedRock = true
	}
	next.Rovers[p.Rover].Energy -= 4
	return next, 4, true
}

// communicateGatesHold checks the conjunction shared by all three
// communicate_* actions: the rover must be at rover_w, the lander at
// lander_w, rover_w must see lander_w, the rover must be available, and
// the lander's channel must be free.
func communicateGatesHold(current State, p Params, r *Rover) bool {
	st := current.Static
	if r.Position != p.RoverWaypoint {
		return false
	}
	if st.LanderPosition != p.LanderWaypoint {
		return false
	}
	if !st.WaypointVisible[p.RoverWaypoint].Has(p.LanderWaypoint) {
		return false
	}
	if !r.Available {
		return false
	}
	if !current.Lander.ChannelFree {
		return false
	}
	return true
}

// inRange reports whether 0 <= i < n.
func inRange(i, n int) bool { return i >= 0 && i < n }

// IsGoal reports whether every predicate set in goal is also satisfied in
// s: every waypoint with required soil/rock communication has it, and
// every (objective, mode) pair required has been communicated.
func IsGoal(s *State, goal *Goal) bool {
	for w := 0; w < s.Static.NumWaypoints; w++ {
		if goal.CommunicatedSoilData.Has(w) && !s.Waypoints[w].CommunicatedSoil {
			return false
		}
		if goal.CommunicatedRockData.Has(w) && !s.Waypoints[w].CommunicatedRock {
			return false
		}
	}
	for o := 0; o < s.Static.NumObjectives; o++ {
		want := goal.CommunicatedImageData[o]
		have := s.Objectives[o].CommunicatedImage
		if want&have != want {
			return false
		}
	}
	return true
}
