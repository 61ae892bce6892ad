package cogtiff

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestViewReadFullImage(t *testing.T) {
	v := newTestView(t)
	window, err := NewWindow(0, 0, 4, 4)
	assert.NoError(t, err)

	a, err := v.Read(context.Background(), window)
	assert.NoError(t, err)
	assert.Equal(t, 4, a.Width)
	assert.Equal(t, 4, a.Height)

	got := a.Data[0].(*TypedSamples[uint8]).Values
	assert.Equal(t, []uint8{
		1, 2, 5, 6,
		3, 4, 7, 8,
		9, 10, 13, 14,
		11, 12, 15, 16,
	}, got)
}

func TestViewReadSubWindowSpanningTiles(t *testing.T) {
	v := newTestView(t)
	// Columns 1-2, rows 1-2 straddle all four tiles.
	window, err := NewWindow(1, 1, 2, 2)
	assert.NoError(t, err)

	a, err := v.Read(context.Background(), window)
	assert.NoError(t, err)
	got := a.Data[0].(*TypedSamples[uint8]).Values
	assert.Equal(t, []uint8{4, 7, 10, 13}, got)
}

func TestViewReadWindowWithinSingleTile(t *testing.T) {
	v := newTestView(t)
	window, err := NewWindow(0, 0, 1, 1)
	assert.NoError(t, err)

	a, err := v.Read(context.Background(), window)
	assert.NoError(t, err)
	got := a.Data[0].(*TypedSamples[uint8]).Values
	assert.Equal(t, []uint8{1}, got)
}

func TestViewReadSetsGeoreferencing(t *testing.T) {
	v := newTestView(t)
	window, err := NewWindow(1, 1, 2, 2)
	assert.NoError(t, err)

	a, err := v.Read(context.Background(), window)
	assert.NoError(t, err)
	x, y := a.Transform.Apply(0, 0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)

	crs, err := v.CRS()
	assert.NoError(t, err)
	assert.Equal(t, crs.EPSGCode, a.CRS.EPSGCode)
}

func TestViewReadWindowPastImageBoundsErrors(t *testing.T) {
	v := newTestView(t)
	window, err := NewWindow(0, 0, 5, 1)
	assert.NoError(t, err)

	_, err = v.Read(context.Background(), window)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindWindow))
}

func TestViewReadWindowPastImageBoundsRows(t *testing.T) {
	v := newTestView(t)
	window, err := NewWindow(0, 0, 1, 5)
	assert.NoError(t, err)

	_, err = v.Read(context.Background(), window)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindWindow))
}

func TestZeroSamples(t *testing.T) {
	s := zeroSamples(DTypeFloat32, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0.0, s.Float64At(0))
	assert.Equal(t, DTypeFloat32, s.DataType())
}

func TestBlitSlice(t *testing.T) {
	dst := make([]uint8, 16) // 4x4
	src := []uint8{1, 2, 3, 4}
	blitSlice(dst, 4, 1, 1, src, 2, 0, 0, 2, 2)
	want := []uint8{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 3, 4, 0,
		0, 0, 0, 0,
	}
	assert.Equal(t, want, dst)
}

func TestBlitBoolPlane(t *testing.T) {
	dst := make([]bool, 4)
	src := []bool{true, true, true, true}
	blitBoolPlane(dst, 2, 0, 0, src, 2, 0, 0, 2, 1)
	assert.Equal(t, []bool{true, true, false, false}, dst)
}
