package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/problem"
	"github.com/nikts27/thesis-rover-planner/search"
	"github.com/nikts27/thesis-rover-planner/state"
)

// navigateChainProblem mirrors the navigate-then-sample scenario: one
// soil-equipped rover at waypoint0, a soil sample at waypoint1, one empty
// store, mutual 0<->1 visibility/traversal, and the lander visible from
// waypoint1.
const navigateChainProblem = `
:objects
rover0 - rover
waypoint0 waypoint1 - waypoint
store0 - store

:init
in rover0 waypoint0
available rover0
equipped_for_soil_analysis rover0
empty store0
store_of store0 rover0
= (energy rover0) 20
= (recharges) 0
visible waypoint0 waypoint1
visible waypoint1 waypoint0
visible waypoint1 waypoint1
can_traverse rover0 waypoint0 waypoint1
can_traverse rover0 waypoint1 waypoint0
at_lander _ waypoint1
channel_free
at_soil_sample waypoint1

:goal
communicated_soil_data waypoint1
`

func TestParseBuildsStaticAndStateFromNavigateChainProblem(t *testing.T) {
	pr, err := problem.Parse(strings.NewReader(navigateChainProblem))
	require.NoError(t, err)
	require.True(t, pr.HadGoalSection)

	st := pr.State.Static
	require.Equal(t, 1, st.NumRovers)
	require.Equal(t, 2, st.NumWaypoints)
	require.Equal(t, 1, st.NumStores)
	require.Equal(t, 1, st.LanderPosition)
	require.True(t, st.WaypointVisible[0].Has(1))
	require.True(t, st.WaypointVisible[1].Has(0))
	require.True(t, st.RoverCanTraverse[0][0].Has(1))
	require.Equal(t, 0, st.StoreRoverID[0])

	s := pr.State
	require.Equal(t, 0, s.Rovers[0].Position)
	require.Equal(t, int64(20), s.Rovers[0].Energy)
	require.True(t, s.Rovers[0].Available)
	require.True(t, s.Rovers[0].EquippedSoil)
	require.True(t, s.Lander.ChannelFree)
	require.True(t, s.Waypoints[1].HasSoilSample)

	require.True(t, pr.Goal.CommunicatedSoilData.Has(1))
}

func TestParseThenSearchSolvesNavigateChainProblem(t *testing.T) {
	pr, err := problem.Parse(strings.NewReader(navigateChainProblem))
	require.NoError(t, err)

	d := search.New(nil)
	plan, _, err := d.Run(pr.State, pr.Goal)
	require.NoError(t, err)
	require.Equal(t, 3, plan.Length)
	require.Equal(t, int64(15), plan.TotalEnergy)
	require.Equal(t, state.Navigate, plan.Steps[0].Action.Kind)
	require.Equal(t, state.SampleSoil, plan.Steps[1].Action.Kind)
	require.Equal(t, state.CommunicateSoil, plan.Steps[2].Action.Kind)
}

func TestParseRejectsUnknownPredicate(t *testing.T) {
	const bad = ":init\nnot_a_real_predicate waypoint0\n"
	_, err := problem.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, problem.ErrUnknownPredicate)
}

func TestParseRejectsPredicateOutsideAnySection(t *testing.T) {
	const bad = "visible waypoint0 waypoint1\n"
	_, err := problem.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, problem.ErrUnknownSection)
}

func TestParseRejectsObjectNameWithoutTrailingInteger(t *testing.T) {
	const bad = ":objects\nrover - rover\n"
	_, err := problem.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, problem.ErrMalformedObjectName)
}

func TestParseRejectsConflictingStoreOwnership(t *testing.T) {
	const bad = ":init\nstore_of store0 rover0\nstore_of store0 rover1\n"
	_, err := problem.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, problem.ErrStoreOwnershipConflict)
}

func TestParseTracksAbsentGoalSectionSeparatelyFromEmptyOne(t *testing.T) {
	noSection, err := problem.Parse(strings.NewReader(":init\navailable rover0\n"))
	require.NoError(t, err)
	require.False(t, noSection.HadGoalSection)

	emptySection, err := problem.Parse(strings.NewReader(":init\navailable rover0\n\n:goal\n"))
	require.NoError(t, err)
	require.True(t, emptySection.HadGoalSection)
	require.True(t, emptySection.Goal.IsEmpty())
}

func TestParseMapsModeNamesToFixedIndices(t *testing.T) {
	const src = ":goal\ncommunicated_image_data objective0 high_res\n"
	pr, err := problem.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, pr.Goal.CommunicatedImageData[0].Has(state.HighRes))
}
