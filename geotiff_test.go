package cogtiff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGeoTIFFBoundsNorthUp(t *testing.T) {
	v := newTestView(t)
	v.transform = Affine{A: 30, B: 0, C: 500000, D: 0, E: -30, F: 4000000}
	g := &GeoTIFF{view: v}

	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, 500000.0, minX)
	assert.Equal(t, 500000.0+30*4, maxX)
	assert.Equal(t, 4000000.0-30*4, minY)
	assert.Equal(t, 4000000.0, maxY)
}

func TestGeoTIFFOverviews(t *testing.T) {
	g := &GeoTIFF{view: newTestView(t)}
	ov := &Overview{view: newTestView(t), parent: g}
	g.overviews = []*Overview{ov}
	assert.Equal(t, 1, len(g.Overviews()))
	assert.True(t, g.Overviews()[0] == ov)
}
