package cogtiff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewWindow(t *testing.T) {
	for _, tc := range []struct {
		name                           string
		colOff, rowOff, width, height  int
		wantErrKind                    ErrorKind
		wantErr                        bool
	}{
		{name: "valid", colOff: 1, rowOff: 2, width: 3, height: 4},
		{name: "negative col_off", colOff: -1, rowOff: 0, width: 1, height: 1, wantErr: true, wantErrKind: KindWindow},
		{name: "negative row_off", colOff: 0, rowOff: -1, width: 1, height: 1, wantErr: true, wantErrKind: KindWindow},
		{name: "zero width", colOff: 0, rowOff: 0, width: 0, height: 1, wantErr: true, wantErrKind: KindWindow},
		{name: "negative height", colOff: 0, rowOff: 0, width: 1, height: -1, wantErr: true, wantErrKind: KindWindow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWindow(tc.colOff, tc.rowOff, tc.width, tc.height)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, IsKind(err, tc.wantErrKind))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, Window{ColOff: tc.colOff, RowOff: tc.rowOff, Width: tc.width, Height: tc.height}, w)
		})
	}
}

func TestWindowString(t *testing.T) {
	w := Window{ColOff: 1, RowOff: 2, Width: 3, Height: 4}
	assert.Equal(t, "Window(col_off=1, row_off=2, width=3, height=4)", w.String())
}

func TestWindowIntersection(t *testing.T) {
	a := Window{ColOff: 0, RowOff: 0, Width: 10, Height: 10}
	b := Window{ColOff: 5, RowOff: 5, Width: 10, Height: 10}
	got, err := a.Intersection(b)
	assert.NoError(t, err)
	assert.Equal(t, Window{ColOff: 5, RowOff: 5, Width: 5, Height: 5}, got)

	// Intersection is commutative.
	got2, err := b.Intersection(a)
	assert.NoError(t, err)
	assert.Equal(t, got, got2)

	// Containment.
	inner := Window{ColOff: 2, RowOff: 2, Width: 2, Height: 2}
	outer := Window{ColOff: 0, RowOff: 0, Width: 10, Height: 10}
	got3, err := outer.Intersection(inner)
	assert.NoError(t, err)
	assert.Equal(t, inner, got3)
}

func TestWindowIntersectionDisjoint(t *testing.T) {
	a := Window{ColOff: 0, RowOff: 0, Width: 5, Height: 5}
	b := Window{ColOff: 10, RowOff: 10, Width: 5, Height: 5}
	_, err := a.Intersection(b)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindWindow))
}

func TestWindowIntersectionTouchingEdges(t *testing.T) {
	// Windows that only touch at an edge (zero-area overlap) do not intersect.
	a := Window{ColOff: 0, RowOff: 0, Width: 5, Height: 5}
	b := Window{ColOff: 5, RowOff: 0, Width: 5, Height: 5}
	_, err := a.Intersection(b)
	assert.Error(t, err)
}
