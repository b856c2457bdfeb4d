package coordinate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXY_North(t *testing.T) {
	north, ok := New(5, 7).North()
	require.True(t, ok)
	require.Equal(t, New(5, 6), north)

	_, ok = New(5, 0).North()
	require.False(t, ok)

	north, ok = New(0, 7).North()
	require.True(t, ok)
	require.Equal(t, New(0, 6), north)
}

func TestXY_South(t *testing.T) {
	require.Equal(t, New(5, 8), New(5, 7).South())
	require.Equal(t, New(5, 1), New(5, 0).South())
	require.Equal(t, New(0, 8), New(0, 7).South())
}

func TestXY_West(t *testing.T) {
	west, ok := New(5, 7).West()
	require.True(t, ok)
	require.Equal(t, New(4, 7), west)

	west, ok = New(5, 0).West()
	require.True(t, ok)
	require.Equal(t, New(4, 0), west)

	_, ok = New(0, 7).West()
	require.False(t, ok)
}

func TestXY_East(t *testing.T) {
	require.Equal(t, New(6, 7), New(5, 7).East())
	require.Equal(t, New(6, 0), New(5, 0).East())
	require.Equal(t, New(1, 7), New(0, 7).East())
}

func TestXY_IndexRoundTrip(t *testing.T) {
	const width = 10
	for _, xy := range []XY{New(0, 0), New(9, 0), New(0, 1), New(3, 4)} {
		require.Equal(t, xy, FromIndex(xy.Index(width), width))
	}
	require.Equal(t, 43, New(3, 4).Index(width))
	require.Equal(t, "3,4", New(3, 4).String())
}
