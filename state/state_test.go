package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/state"
)

// twoWaypointStatic builds a minimal Static: one rover, two waypoints
// mutually visible and traversable, one store owned by the rover, lander
// at waypoint 1.
func twoWaypointStatic() *state.Static {
	st := &state.Static{
		NumRovers:    1,
		NumWaypoints: 2,
		NumStores:    1,
	}
	st.WaypointVisible[0] = state.Bitmap32(0).With(1)
	st.WaypointVisible[1] = state.Bitmap32(0).With(0)
	st.RoverCanTraverse[0][0] = state.Bitmap32(0).With(1)
	st.RoverCanTraverse[0][1] = state.Bitmap32(0).With(0)
	st.StoreRoverID[0] = 0
	st.LanderPosition = 1
	return st
}

func baseState(st *state.Static) state.State {
	s := state.State{Static: st}
	s.Rovers[0] = state.Rover{Position: 0, Energy: 20, Available: true, EquippedSoil: true}
	s.Waypoints[1].InSun = false
	s.Lander.ChannelFree = true
	return s
}

func TestNavigateMovesRoverAndSpendsEnergy(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)

	next, cost, ok := state.Apply(s, state.Navigate, state.Params{Rover: 0, From: 0, To: 1}, &state.Goal{})
	require.True(t, ok)
	require.Equal(t, int64(8), cost)
	require.Equal(t, 1, next.Rovers[0].Position)
	require.Equal(t, int64(12), next.Rovers[0].Energy)
	// original is untouched (value semantics).
	require.Equal(t, 0, s.Rovers[0].Position)
}

func TestNavigateRejectsWithoutEnergy(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)
	s.Rovers[0].Energy = 4

	_, _, ok := state.Apply(s, state.Navigate, state.Params{Rover: 0, From: 0, To: 1}, &state.Goal{})
	require.False(t, ok)
}

func TestRechargeRestoresEnergyAndCountsRecharge(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)
	s.Rovers[0].Energy = 5
	s.Waypoints[0].InSun = true

	next, cost, ok := state.Apply(s, state.Recharge, state.Params{Rover: 0, Waypoint: 0}, &state.Goal{})
	require.True(t, ok)
	require.Equal(t, int64(0), cost)
	require.Equal(t, int64(25), next.Rovers[0].Energy)
	require.Equal(t, int64(1), next.Recharges)
}

func TestRechargeRejectsAboveThreshold(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)
	s.Rovers[0].Energy = 8
	s.Waypoints[0].InSun = true

	_, _, ok := state.Apply(s, state.Recharge, state.Params{Rover: 0, Waypoint: 0}, &state.Goal{})
	require.False(t, ok)
}

func TestSampleSoilThenCommunicateSatisfiesGoal(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)
	s.Waypoints[0].HasSoilSample = true

	goal := &state.Goal{CommunicatedSoilData: state.Bitmap32(0).With(0)}

	s1, cost, ok := state.Apply(s, state.SampleSoil, state.Params{Rover: 0, Store: 0, Waypoint: 0}, goal)
	require.True(t, ok)
	require.Equal(t, int64(3), cost)
	require.True(t, s1.Stores[0].IsFull)
	require.False(t, s1.Waypoints[0].HasSoilSample)
	require.False(t, state.IsGoal(&s1, goal))

	s2, cost2, ok := state.Apply(s1, state.CommunicateSoil, state.Params{
		Rover: 0, SampleWaypoint: 0, RoverWaypoint: 0, LanderWaypoint: 1,
	}, goal)
	require.True(t, ok)
	require.Equal(t, int64(4), cost2)
	require.True(t, s2.Waypoints[0].CommunicatedSoil)
	require.True(t, state.IsGoal(&s2, goal))
}

func TestSampleSoilRejectsWhenStoreFull(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)
	s.Waypoints[0].HasSoilSample = true
	s.Stores[0].IsFull = true
	goal := &state.Goal{CommunicatedSoilData: state.Bitmap32(0).With(0)}

	_, _, ok := state.Apply(s, state.SampleSoil, state.Params{Rover: 0, Store: 0, Waypoint: 0}, goal)
	require.False(t, ok)
}

func TestCalibrateThenTakeImageThenCommunicate(t *testing.T) {
	st := twoWaypointStatic()
	st.NumCameras = 1
	st.NumObjectives = 1
	st.CameraRoverID[0] = 0
	st.CameraCalibrationTargets[0] = state.Bitmap32(0).With(0)
	st.CameraModesSupported[0] = state.ModeSet(0).With(state.HighRes)
	st.ObjectiveVisible[0] = state.Bitmap32(0).With(0)

	s := baseState(st)
	s.Rovers[0].EquippedImaging = true

	goal := &state.Goal{}
	goal.CommunicatedImageData[0] = goal.CommunicatedImageData[0].With(state.HighRes)

	s1, _, ok := state.Apply(s, state.Calibrate, state.Params{Rover: 0, Camera: 0, Objective: 0, Waypoint: 0}, goal)
	require.True(t, ok)
	require.True(t, s1.Cameras[0].Calibrated)

	s2, _, ok := state.Apply(s1, state.TakeImage, state.Params{
		Rover: 0, Waypoint: 0, Objective: 0, Camera: 0, Mode: state.HighRes,
	}, goal)
	require.True(t, ok)
	require.False(t, s2.Cameras[0].Calibrated)
	require.True(t, s2.Rovers[0].HaveImage[0].Has(state.HighRes))

	s3, cost, ok := state.Apply(s2, state.CommunicateImage, state.Params{
		Rover: 0, Objective: 0, Mode: state.HighRes, RoverWaypoint: 0, LanderWaypoint: 1,
	}, goal)
	require.True(t, ok)
	require.Equal(t, int64(6), cost)
	require.True(t, state.IsGoal(&s3, goal))
}

func TestEmptyGoalIsGoalImmediately(t *testing.T) {
	st := twoWaypointStatic()
	s := baseState(st)
	goal := &state.Goal{}
	require.True(t, goal.IsEmpty())
	require.True(t, state.IsGoal(&s, goal))
}
