package state

import "errors"

// Sentinel errors surfaced by Apply's caller-visible validation path.
// Apply itself reports "not applicable" via its boolean return rather
// than an error (a failed precondition is an ordinary outcome of search,
// not a fault); these are exported for callers that need to explain *why*
// an action was rejected. Nothing in this module returns them: successor
// and verify rely on Apply's boolean result alone.
var (
	// ErrRoverOutOfRange indicates a Params.Rover index outside
	// [0, Static.NumRovers).
	ErrRoverOutOfRange = errors.New("state: rover index out of range")
	// ErrWaypointOutOfRange indicates a waypoint index outside
	// [0, Static.NumWaypoints).
	ErrWaypointOutOfRange = errors.New("state: waypoint index out of range")
	// ErrStoreOutOfRange indicates a store index outside [0, Static.NumStores).
	ErrStoreOutOfRange = errors.New("state: store index out of range")
	// ErrCameraOutOfRange indicates a camera index outside [0, Static.NumCameras).
	ErrCameraOutOfRange = errors.New("state: camera index out of range")
	// ErrObjectiveOutOfRange indicates an objective index outside
	// [0, Static.NumObjectives).
	ErrObjectiveOutOfRange = errors.New("state: objective index out of range")
)
