package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/search"
)

func TestParseMethodAcceptsBestAndAstar(t *testing.T) {
	m, ok := parseMethod("best")
	require.True(t, ok)
	require.Equal(t, search.Satisficing, m)

	m, ok = parseMethod("astar")
	require.True(t, ok)
	require.Equal(t, search.Optimal, m)
}

func TestParseMethodRejectsUnknownName(t *testing.T) {
	_, ok := parseMethod("greedy")
	require.False(t, ok)
}
