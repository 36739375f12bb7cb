package solution_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/solution"
	"github.com/nikts27/thesis-rover-planner/state"
)

func TestReadRoundTripsWriteOutputForSolvedPlan(t *testing.T) {
	plan := solveNavigateChain(t)

	var buf strings.Builder
	require.NoError(t, solution.Write(&buf, plan))

	sol, err := solution.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, plan.Length, sol.Length)
	require.Equal(t, plan.TotalRecharge, sol.TotalRecharges)
	require.Len(t, sol.Lines, plan.Length)

	for i, step := range plan.Steps {
		require.Equal(t, step.Action.Kind, sol.Lines[i].Kind)
		require.Equal(t, step.Action.Params, sol.Lines[i].Params)
		require.Equal(t, step.H, sol.Lines[i].H)
		require.Equal(t, step.F, sol.Lines[i].F)
	}
}

func TestReadParsesEveryActionKindBackToItsParams(t *testing.T) {
	input := strings.Join([]string{
		"Solution length: 10",
		"Total recharges uses: 1",
		"( navigate rover2 waypoint1 waypoint4 ) h=1 f=2",
		"( recharge rover0 waypoint3 ) h=1 f=2",
		"( sample_soil rover1 store2 waypoint5 ) h=1 f=2",
		"( sample_rock rover1 store2 waypoint5 ) h=1 f=2",
		"( drop rover0 store1 ) h=1 f=2",
		"( calibrate rover0 camera1 objective2 waypoint3 ) h=1 f=2",
		"( take_image rover0 waypoint3 objective2 camera1 high_res ) h=1 f=2",
		"( communicate_soil_data rover0 waypoint1 waypoint2 waypoint3 general ) h=1 f=2",
		"( communicate_rock_data rover0 waypoint1 waypoint2 waypoint3 general ) h=1 f=2",
		"( communicate_image_data rover0 objective2 colour waypoint1 waypoint3 general ) h=1 f=2",
	}, "\n") + "\n"

	sol, err := solution.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 10, sol.Length)
	require.Equal(t, int64(1), sol.TotalRecharges)
	require.Len(t, sol.Lines, 10)

	require.Equal(t, state.Navigate, sol.Lines[0].Kind)
	require.Equal(t, state.Params{Rover: 2, From: 1, To: 4}, sol.Lines[0].Params)

	require.Equal(t, state.Recharge, sol.Lines[1].Kind)
	require.Equal(t, state.Params{Rover: 0, Waypoint: 3}, sol.Lines[1].Params)

	require.Equal(t, state.SampleSoil, sol.Lines[2].Kind)
	require.Equal(t, state.Params{Rover: 1, Store: 2, Waypoint: 5}, sol.Lines[2].Params)

	require.Equal(t, state.SampleRock, sol.Lines[3].Kind)
	require.Equal(t, state.Params{Rover: 1, Store: 2, Waypoint: 5}, sol.Lines[3].Params)

	require.Equal(t, state.Drop, sol.Lines[4].Kind)
	require.Equal(t, state.Params{Rover: 0, Store: 1}, sol.Lines[4].Params)

	require.Equal(t, state.Calibrate, sol.Lines[5].Kind)
	require.Equal(t, state.Params{Rover: 0, Camera: 1, Objective: 2, Waypoint: 3}, sol.Lines[5].Params)

	require.Equal(t, state.TakeImage, sol.Lines[6].Kind)
	require.Equal(t, state.Params{Rover: 0, Waypoint: 3, Objective: 2, Camera: 1, Mode: state.HighRes}, sol.Lines[6].Params)

	require.Equal(t, state.CommunicateSoil, sol.Lines[7].Kind)
	require.Equal(t, state.Params{Rover: 0, SampleWaypoint: 1, RoverWaypoint: 2, LanderWaypoint: 3}, sol.Lines[7].Params)

	require.Equal(t, state.CommunicateRock, sol.Lines[8].Kind)
	require.Equal(t, state.Params{Rover: 0, SampleWaypoint: 1, RoverWaypoint: 2, LanderWaypoint: 3}, sol.Lines[8].Params)

	require.Equal(t, state.CommunicateImage, sol.Lines[9].Kind)
	require.Equal(t, state.Params{Rover: 0, Objective: 2, Mode: state.Colour, RoverWaypoint: 1, LanderWaypoint: 3}, sol.Lines[9].Params)
}

func TestReadRejectsMissingLengthHeader(t *testing.T) {
	input := "Total recharges uses: 0\n( navigate rover0 waypoint0 waypoint1 ) h=0 f=0\n"
	_, err := solution.Read(strings.NewReader(input))
	require.ErrorIs(t, err, solution.ErrMalformedHeader)
}

func TestReadRejectsActionLineMissingAnnotations(t *testing.T) {
	input := "Solution length: 1\nTotal recharges uses: 0\n( navigate rover0 waypoint0 waypoint1 )\n"
	_, err := solution.Read(strings.NewReader(input))
	require.ErrorIs(t, err, solution.ErrMalformedActionLine)
}

func TestReadRejectsUnknownActionName(t *testing.T) {
	input := "Solution length: 1\nTotal recharges uses: 0\n( teleport rover0 waypoint0 ) h=0 f=0\n"
	_, err := solution.Read(strings.NewReader(input))
	require.ErrorIs(t, err, solution.ErrUnknownActionName)
}

func TestReadRejectsParamWithoutTrailingInteger(t *testing.T) {
	input := "Solution length: 1\nTotal recharges uses: 0\n( navigate rover waypoint0 waypoint1 ) h=0 f=0\n"
	_, err := solution.Read(strings.NewReader(input))
	require.ErrorIs(t, err, solution.ErrMalformedParam)
}

func TestReadRejectsUnknownModeName(t *testing.T) {
	input := "Solution length: 1\nTotal recharges uses: 0\n( take_image rover0 waypoint3 objective2 camera1 ultra_hd ) h=0 f=0\n"
	_, err := solution.Read(strings.NewReader(input))
	require.ErrorIs(t, err, solution.ErrMalformedParam)
}
