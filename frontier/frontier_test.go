package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/frontier"
)

func TestPopReturnsSmallestFFirst(t *testing.T) {
	fr := frontier.New()
	fr.Push(5, 100)
	fr.Push(1, 101)
	fr.Push(3, 102)

	f, id := fr.Pop()
	require.Equal(t, int64(1), f)
	require.Equal(t, int32(101), id)

	f, id = fr.Pop()
	require.Equal(t, int64(3), f)
	require.Equal(t, int32(102), id)

	f, id = fr.Pop()
	require.Equal(t, int64(5), f)
	require.Equal(t, int32(100), id)

	require.True(t, fr.Empty())
}

func TestPopBreaksTiesByPushOrder(t *testing.T) {
	fr := frontier.New()
	fr.Push(7, 1)
	fr.Push(7, 2)
	fr.Push(7, 3)

	for _, want := range []int32{1, 2, 3} {
		_, id := fr.Pop()
		require.Equal(t, want, id)
	}
}

func TestLenTracksFrontierSize(t *testing.T) {
	fr := frontier.New()
	require.Equal(t, 0, fr.Len())
	fr.Push(1, 1)
	fr.Push(2, 2)
	require.Equal(t, 2, fr.Len())
	fr.Pop()
	require.Equal(t, 1, fr.Len())
}
