/*
File    : pixelscript/pixel/grid_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package pixel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridReadWrite(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.Set(0, 0, 10, 20, 30))

	r, gg, b, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(10), r)
	require.Equal(t, byte(20), gg)
	require.Equal(t, byte(30), b)

	r, gg, b, err = g.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, r)
	require.Zero(t, gg)
	require.Zero(t, b)
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	_, _, _, err := g.At(2, 0)
	require.Error(t, err)
	require.Error(t, g.Set(-1, 0, 1, 1, 1))
}

func TestGridSnapshotIsIndependent(t *testing.T) {
	g := NewGrid(1, 1)
	require.NoError(t, g.Set(0, 0, 1, 2, 3))

	snap := g.Snapshot()
	require.NoError(t, g.Set(0, 0, 9, 9, 9))

	r, gg, b, err := snap.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(1), r)
	require.Equal(t, byte(2), gg)
	require.Equal(t, byte(3), b)
}

func TestPNGRoundTrip(t *testing.T) {
	g := NewGrid(3, 2)
	require.NoError(t, g.Set(1, 1, 100, 150, 200))

	var buf bytes.Buffer
	require.NoError(t, g.EncodePNG(&buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, decoded.Width)
	require.Equal(t, 2, decoded.Height)

	r, gg, b, err := decoded.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, byte(100), r)
	require.Equal(t, byte(150), gg)
	require.Equal(t, byte(200), b)
}

func TestIsSupportedImageExt(t *testing.T) {
	require.True(t, IsSupportedImageExt("photo.png"))
	require.True(t, IsSupportedImageExt("photo.JPG"))
	require.False(t, IsSupportedImageExt("photo.gif"))
}
