package closed

import "github.com/nikts27/thesis-rover-planner/state"

// Fingerprint is the canonical, lossy encoding of a State used for
// duplicate detection. Every field is a fixed-size array of comparable
// primitives, so Fingerprint itself is comparable and can be used
// directly as a Go map key — no separate byte-packing step is needed to
// get the "fixed-size byte array" behaviour the spec describes; Go's
// struct comparison already gives us that for free.
type Fingerprint struct {
	// Positions[r] is rover r's waypoint index.
	Positions [state.MaxRovers]int16
	// Energy[r] is rover r's current energy.
	Energy [state.MaxRovers]int64

	// SoilAnalysis/RockAnalysis are the per-rover analysis bitmaps
	// combined (OR'd) across every rover, per §4.3's "combined across
	// rovers" instruction.
	SoilAnalysis state.Bitmap32
	RockAnalysis state.Bitmap32

	// HaveImage[r] packs rover r's HaveImage matrix: 3 bits per
	// objective (MaxModes=3), MaxObjectives=10 objectives, 30 bits,
	// comfortably inside a uint32.
	HaveImage [state.MaxRovers]uint32

	WaypointSoilSample  state.Bitmap32
	WaypointRockSample  state.Bitmap32
	WaypointCommSoil    state.Bitmap32
	WaypointCommRock    state.Bitmap32
	WaypointInSun       state.Bitmap32
	CameraCalibrated    state.Bitmap32
	StoreFull           state.Bitmap32
	// ObjectiveCommImage has bit o set iff any mode has been communicated
	// for objective o — the "collapsed over modes as a second packing"
	// the spec calls for, distinct from HaveImage's full per-mode detail.
	ObjectiveCommImage state.Bitmap32

	ChannelFree bool
	Recharges   int64
}

// Compute builds the canonical fingerprint of s.
func Compute(s *state.State) Fingerprint {
	st := s.Static
	var fp Fingerprint

	for r := 0; r < st.NumRovers; r++ {
		fp.Positions[r] = int16(s.Rovers[r].Position)
		fp.Energy[r] = s.Rovers[r].Energy
		fp.SoilAnalysis |= s.Rovers[r].HasSoilAnalysis
		fp.RockAnalysis |= s.Rovers[r].HasRockAnalysis

		var packed uint32
		for o := 0; o < st.NumObjectives; o++ {
			packed |= uint32(s.Rovers[r].HaveImage[o]) << uint(3*o)
		}
		fp.HaveImage[r] = packed
	}

	for w := 0; w < st.NumWaypoints; w++ {
		wp := &s.Waypoints[w]
		if wp.HasSoilSample {
			fp.WaypointSoilSample = fp.WaypointSoilSample.With(w)
		}
		if wp.HasRockSample {
			fp.WaypointRockSample = fp.WaypointRockSample.With(w)
		}
		if wp.CommunicatedSoil {
			fp.WaypointCommSoil = fp.WaypointCommSoil.With(w)
		}
		if wp.CommunicatedRock {
			fp.WaypointCommRock = fp.WaypointCommRock.With(w)
		}
		if wp.InSun {
			fp.WaypointInSun = fp.WaypointInSun.With(w)
		}
	}

	for c := 0; c < st.NumCameras; c++ {
		if s.Cameras[c].Calibrated {
			fp.CameraCalibrated = fp.CameraCalibrated.With(c)
		}
	}
	for sidx := 0; sidx < st.NumStores; sidx++ {
		if s.Stores[sidx].IsFull {
			fp.StoreFull = fp.StoreFull.With(sidx)
		}
	}
	for o := 0; o < st.NumObjectives; o++ {
		if s.Objectives[o].CommunicatedImage != 0 {
			fp.ObjectiveCommImage = fp.ObjectiveCommImage.With(o)
		}
	}

	fp.ChannelFree = s.Lander.ChannelFree
	fp.Recharges = s.Recharges
	return fp
}
