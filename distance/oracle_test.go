package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/distance"
	"github.com/nikts27/thesis-rover-planner/state"
)

// chainStatic builds a 3-waypoint chain 0<->1<->2, one rover that may
// traverse and see along the chain only, lander visible from waypoint 2.
func chainStatic() *state.Static {
	st := &state.Static{NumRovers: 1, NumWaypoints: 3}
	link := func(a, b int) {
		st.WaypointVisible[a] = st.WaypointVisible[a].With(b)
		st.WaypointVisible[b] = st.WaypointVisible[b].With(a)
		st.RoverCanTraverse[0][a] = st.RoverCanTraverse[0][a].With(b)
		st.RoverCanTraverse[0][b] = st.RoverCanTraverse[0][b].With(a)
	}
	link(0, 1)
	link(1, 2)
	st.LanderPosition = 2
	return st
}

func TestDistZeroToSelf(t *testing.T) {
	o, err := distance.Build(chainStatic())
	require.NoError(t, err)
	require.Equal(t, int64(0), o.Dist(0, 1, 1))
}

func TestDistAlongChain(t *testing.T) {
	o, err := distance.Build(chainStatic())
	require.NoError(t, err)
	require.Equal(t, int64(8), o.Dist(0, 0, 1))
	require.Equal(t, int64(16), o.Dist(0, 0, 2))
}

func TestDistUnreachableIsInf(t *testing.T) {
	st := chainStatic()
	st.NumWaypoints = 4 // waypoint 3 added but never linked
	o, err := distance.Build(st)
	require.NoError(t, err)
	require.Equal(t, distance.Inf, o.Dist(0, 0, 3))
}

func TestNearestCommPointFindsClosestVisibleToLander(t *testing.T) {
	st := chainStatic()
	// Only waypoint 1 sees the lander (at waypoint 2) directly; waypoint
	// 0 must route through it.
	o, err := distance.Build(st)
	require.NoError(t, err)

	w, ok := o.NearestCommPoint(0, 0)
	require.True(t, ok)
	require.Equal(t, 1, w)
	require.Equal(t, int64(8), o.Dist(0, 0, w))
}

func TestNearestCommPointNoneWhenUnreachable(t *testing.T) {
	st := &state.Static{NumRovers: 1, NumWaypoints: 2}
	// no traversal edges at all; lander at 1, not visible from 0.
	st.LanderPosition = 1
	o, err := distance.Build(st)
	require.NoError(t, err)

	_, ok := o.NearestCommPoint(0, 0)
	require.False(t, ok)
}
