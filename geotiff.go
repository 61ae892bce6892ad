package cogtiff

import "math"

// GeoTIFF is an open Cloud-Optimized GeoTIFF: the primary image plus its
// overview pyramid, all backed by the same underlying object and decoded-
// tile cache. It implements ImageView directly, reading the primary image.
type GeoTIFF struct {
	*view
	overviews []*Overview
}

// Overviews returns this GeoTIFF's reduced-resolution pyramid levels,
// sorted from largest (finest) to smallest (coarsest).
func (g *GeoTIFF) Overviews() []*Overview {
	return g.overviews
}

// Bounds returns the axis-aligned bounding box of the image in its CRS,
// computed from all four pixel-space corners so it remains correct for
// rotated transforms.
func (g *GeoTIFF) Bounds() (minX, minY, maxX, maxY float64) {
	corners := [4][2]float64{
		{0, 0},
		{float64(g.Width()), 0},
		{0, float64(g.Height())},
		{float64(g.Width()), float64(g.Height())},
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := g.Transform().Apply(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}
