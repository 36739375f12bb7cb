package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/internal/fixtures"
	"github.com/nikts27/thesis-rover-planner/search"
)

func TestGenerateProducesASolvableProblem(t *testing.T) {
	cfg := fixtures.DefaultConfig()
	st, s, goal, err := fixtures.Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.NumWaypoints, st.NumWaypoints)
	require.Equal(t, cfg.NumRovers, st.NumRovers)

	d := search.New(nil)
	plan, _, err := d.Run(s, goal)
	require.NoError(t, err)
	require.Greater(t, plan.Length, 0)
}

func TestGenerateIsDeterministicForAFixedSeed(t *testing.T) {
	cfg := fixtures.DefaultConfig()
	st1, s1, goal1, err := fixtures.Generate(cfg)
	require.NoError(t, err)
	st2, s2, goal2, err := fixtures.Generate(cfg)
	require.NoError(t, err)

	require.Equal(t, st1, st2)
	require.Equal(t, s1, s2)
	require.Equal(t, goal1, goal2)
}

func TestGenerateRejectsTooManyWaypoints(t *testing.T) {
	cfg := fixtures.DefaultConfig()
	cfg.NumWaypoints = 1000
	_, _, _, err := fixtures.Generate(cfg)
	require.Error(t, err)
}

func TestGenerateGridProducesASolvableProblem(t *testing.T) {
	cfg := fixtures.DefaultGridConfig()
	st, s, goal, err := fixtures.GenerateGrid(cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.Rows*cfg.Cols, st.NumWaypoints)

	d := search.New(nil)
	plan, _, err := d.Run(s, goal)
	require.NoError(t, err)
	require.Greater(t, plan.Length, 0)
}
