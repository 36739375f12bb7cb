package closed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/closed"
	"github.com/nikts27/thesis-rover-planner/state"
)

func minimalState() state.State {
	st := &state.Static{NumRovers: 1, NumWaypoints: 2, NumStores: 1}
	s := state.State{Static: st}
	s.Rovers[0] = state.Rover{Position: 0, Energy: 20, Available: true}
	return s
}

func TestInsertReportsNewOnFirstOccurrence(t *testing.T) {
	set := closed.NewSet()
	s := minimalState()
	require.True(t, set.Insert(&s))
	require.Equal(t, 1, set.Len())
}

func TestInsertReportsDuplicateOnSecondOccurrence(t *testing.T) {
	set := closed.NewSet()
	s := minimalState()
	require.True(t, set.Insert(&s))
	require.False(t, set.Insert(&s))
	require.Equal(t, 1, set.Len())
}

func TestInsertDistinguishesDifferingPosition(t *testing.T) {
	set := closed.NewSet()
	a := minimalState()
	b := minimalState()
	b.Rovers[0].Position = 1

	require.True(t, set.Insert(&a))
	require.True(t, set.Insert(&b))
	require.Equal(t, 2, set.Len())
}

func TestInsertCollapsesDifferingButIrrelevantDetail(t *testing.T) {
	// Two states that agree on every packed field but differ in a field
	// the fingerprint does not pack (here: EquippedSoil, a per-rover
	// flag not part of the closed-set fingerprint) must collide.
	set := closed.NewSet()
	a := minimalState()
	b := minimalState()
	b.Rovers[0].EquippedSoil = true

	require.True(t, set.Insert(&a))
	require.False(t, set.Insert(&b))
	require.Equal(t, 1, set.Len())
}

func TestInsertDistinguishesDifferingRecharges(t *testing.T) {
	set := closed.NewSet()
	a := minimalState()
	b := minimalState()
	b.Recharges = 1

	require.True(t, set.Insert(&a))
	require.True(t, set.Insert(&b))
	require.Equal(t, 2, set.Len())
}
