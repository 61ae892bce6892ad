package cogtiff

import "math"

// Tile is a decoded tile from a GeoTIFF or Overview, together with its
// grid position.
type Tile struct {
	X int
	Y int
	*Array
}

// tileCount returns the number of tiles in the x and y directions for an
// image of the given dimensions and tile size, per original_source's
// TiledMixin.tile_count.
func tileCount(width, height, tileWidth, tileHeight int) (int, int) {
	return int(math.Ceil(float64(width) / float64(tileWidth))),
		int(math.Ceil(float64(height) / float64(tileHeight)))
}
