package state

// ActionKind enumerates the ten Rover ground-action schemas. The integer
// values match the `Id` column of the action table in the planning spec
// and are part of the plan's external representation order (successor
// enumeration is keyed off this order; see package successor).
type ActionKind int

const (
	Navigate ActionKind = iota
	Recharge
	SampleSoil
	SampleRock
	Drop
	Calibrate
	TakeImage
	CommunicateSoil
	CommunicateRock
	CommunicateImage

	numActionKinds
)

// actionNames gives the exact on-disk action name used by the solution
// writer and the plan verifier.
var actionNames = [numActionKinds]string{
	Navigate:          "navigate",
	Recharge:          "recharge",
	SampleSoil:        "sample_soil",
	SampleRock:        "sample_rock",
	Drop:              "drop",
	Calibrate:         "calibrate",
	TakeImage:         "take_image",
	CommunicateSoil:   "communicate_soil_data",
	CommunicateRock:   "communicate_rock_data",
	CommunicateImage:  "communicate_image_data",
}

// String returns the action's canonical name, as written to a solution
// file.
func (k ActionKind) String() string {
	if k < 0 || int(k) >= int(numActionKinds) {
		return "unknown_action"
	}
	return actionNames[k]
}

// Params carries every parameter any of the ten actions might need. Only
// the fields relevant to Kind are meaningful; the rest are left zero.
// A single flat struct (rather than one type per action) keeps the
// successor generator and the plan/solution types simple, at the cost of
// a few unused ints per action — negligible at this problem's scale.
type Params struct {
	Rover int

	// navigate
	From int
	To   int

	// recharge / sample_soil / sample_rock / calibrate / take_image:
	// the waypoint the rover must be at.
	Waypoint int

	Store     int
	Camera    int
	Objective int
	Mode      Mode

	// communicate_soil/rock/image
	SampleWaypoint int // sample_w (soil/rock only)
	RoverWaypoint  int // rover_w
	LanderWaypoint int // lander_w
}

// energyCost gives the fixed energy cost of each action kind, matching
// the `Cost` column of the action table (navigate=8, recharge=0 (it
// restores energy rather than spending it), sample_soil=3,
// sample_rock=5, drop=0, calibrate=2, take_image=1,
// communicate_soil=4, communicate_rock=4, communicate_image=6).
var energyCost = [numActionKinds]int64{
	Navigate:         8,
	Recharge:         0,
	SampleSoil:       3,
	SampleRock:       5,
	Drop:             0,
	Calibrate:        2,
	TakeImage:        1,
	CommunicateSoil:  4,
	CommunicateRock:  4,
	CommunicateImage: 6,
}
