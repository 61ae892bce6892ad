package cogtiff

import (
	"context"

	"github.com/maypok86/otter/v2"
)

// tileKey identifies one decoded tile within a GeoTIFF, across its primary
// image and all overviews, for the shared decoded-tile cache.
type tileKey struct {
	dirIndex  int
	x, y      int
	boundless bool
}

// tileCache is a size-bounded otter cache of decoded tiles, shared by a
// GeoTIFF and all of its Overviews.
type tileCache struct {
	cache *otter.Cache[tileKey, *Array]
}

// defaultTileCacheSize caps the cache at this many decoded tiles; callers
// needing a different bound can pass WithTileCacheSize to Open.
const defaultTileCacheSize = 256

func newTileCache(maxSize int) (*tileCache, error) {
	if maxSize <= 0 {
		maxSize = defaultTileCacheSize
	}
	c, err := otter.New(&otter.Options[tileKey, *Array]{
		MaximumSize: maxSize,
	})
	if err != nil {
		return nil, err
	}
	return &tileCache{cache: c}, nil
}

func (c *tileCache) get(ctx context.Context, key tileKey, load func(context.Context, tileKey) (*Array, error)) (*Array, error) {
	return c.cache.Get(ctx, key, otter.LoaderFunc[tileKey, *Array](load))
}
