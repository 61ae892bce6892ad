package cogtiff

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/developmentseed/go-cogtiff/store"
	"github.com/developmentseed/go-cogtiff/tiffdecode"
)

// Corner names a pixel corner for ImageView.XY, matching rasterio's
// offset= kwarg.
type Corner string

const (
	CornerCenter Corner = "center"
	CornerUL     Corner = "ul"
	CornerUR     Corner = "ur"
	CornerLL     Corner = "ll"
	CornerLR     Corner = "lr"
)

// ImageView is the shared read surface of a GeoTIFF's primary image and
// each of its Overviews. *GeoTIFF and *Overview both embed a *view and so
// implement this interface directly.
type ImageView interface {
	Width() int
	Height() int
	TileWidth() int
	TileHeight() int
	TileCount() (int, int)
	CRS() (*CRS, error)
	Transform() Affine
	Nodata() *float64
	Colormap() *Colormap
	DType() (DataType, error)
	Index(x, y float64, op ...func(float64) int) (row, col int)
	XY(row, col int, corner ...Corner) (x, y float64)
	Res() (float64, float64)
	FetchTile(ctx context.Context, x, y int, boundless bool) (*Tile, error)
	FetchTiles(ctx context.Context, coords [][2]int, boundless bool) ([]*Tile, error)
	Read(ctx context.Context, window Window) (*Array, error)
}

// view is the concrete implementation shared by GeoTIFF and Overview,
// supporting arbitrary band counts, dtypes and an optional mask IFD.
type view struct {
	rs        store.RangeReader
	path      string
	dir       *imageDirectory
	maskDir   *imageDirectory
	transform Affine
	crsFn     func() (*CRS, error)
	cache     *tileCache
	dirIndex  int
	metrics   *Metrics
}

func (v *view) Width() int      { return v.dir.width() }
func (v *view) Height() int     { return v.dir.height() }
func (v *view) TileWidth() int  { return v.dir.tileWidth() }
func (v *view) TileHeight() int { return v.dir.tileHeight() }

func (v *view) TileCount() (int, int) {
	return tileCount(v.Width(), v.Height(), v.TileWidth(), v.TileHeight())
}

func (v *view) CRS() (*CRS, error)     { return v.crsFn() }
func (v *view) Transform() Affine      { return v.transform }
func (v *view) Nodata() *float64       { return v.dir.nodata() }
func (v *view) Colormap() *Colormap    { return v.dir.colormap() }
func (v *view) DType() (DataType, error) {
	if err := v.dir.uniformSampleFormat(); err != nil {
		return 0, err
	}
	return dataTypeFromTags(v.dir.sampleFormat(), v.dir.bitsPerSample())
}

// Index returns the (row, col) of the pixel containing (x, y) in this
// view's CRS, per original_source's TransformMixin.index.
func (v *view) Index(x, y float64, op ...func(float64) int) (int, int) {
	round := math.Floor
	if len(op) > 0 {
		round = func(f float64) float64 { return float64(op[0](f)) }
	}
	inv := v.transform.Invert()
	colFrac, rowFrac := inv.Apply(x, y)
	return int(round(rowFrac)), int(round(colFrac))
}

// XY returns the coordinates of a pixel at (row, col), defaulting to the
// pixel's center, per original_source's TransformMixin.xy.
func (v *view) XY(row, col int, corner ...Corner) (float64, float64) {
	c := CornerCenter
	if len(corner) > 0 {
		c = corner[0]
	}

	var cc, rr float64
	switch c {
	case CornerCenter:
		cc, rr = float64(col)+0.5, float64(row)+0.5
	case CornerUL:
		cc, rr = float64(col), float64(row)
	case CornerUR:
		cc, rr = float64(col)+1, float64(row)
	case CornerLL:
		cc, rr = float64(col), float64(row)+1
	case CornerLR:
		cc, rr = float64(col)+1, float64(row)+1
	default:
		cc, rr = float64(col)+0.5, float64(row)+0.5
	}
	return v.transform.Apply(cc, rr)
}

// Res returns the (x, y) pixel resolution in this view's CRS units.
func (v *view) Res() (float64, float64) {
	return v.transform.Res()
}

// fetchTileRaw reads and decompresses a single tile (or mask tile) from
// dir at grid position (x, y).
func (v *view) fetchTileRaw(ctx context.Context, dir *imageDirectory, x, y int) ([]byte, error) {
	tilesAcross, _ := tileCount(dir.width(), dir.height(), dir.tileWidth(), dir.tileHeight())
	idx := y*tilesAcross + x
	if idx < 0 || idx >= len(dir.raw.TileOffsets) || idx >= len(dir.raw.TileByteCounts) {
		return nil, newError(KindWindow, fmt.Sprintf("tile (%d, %d) is out of range", x, y), nil)
	}

	offset := int64(dir.raw.TileOffsets[idx])
	length := int64(dir.raw.TileByteCounts[idx])
	raw, err := v.rs.ReadRange(ctx, v.path, offset, length)
	v.metrics.observeRangeRead(len(raw))
	if err != nil {
		return nil, newError(KindDecode, "range read tile bytes", err)
	}

	dtype, err := dataTypeFromTags(dir.sampleFormat(), dir.bitsPerSample())
	if err != nil {
		return nil, err
	}
	uncompressedSize := dir.tileWidth() * dir.tileHeight() * dir.samplesPerPixel() * dtype.Size()

	compression := tiffdecode.Compression(dir.raw.Compression)
	if compression == 0 {
		compression = tiffdecode.CompressionNone
	}
	if !tiffdecode.Supported(compression) {
		return nil, newError(KindUnsupported, fmt.Sprintf("compression %d is not supported by the reference decoder", compression), nil)
	}
	return tiffdecode.Decompress(compression, raw, uncompressedSize)
}

// fetchTileArray fetches and decodes the data (and mask, if present) tile
// at (x, y), without caching or boundless clipping.
func (v *view) fetchTileArray(ctx context.Context, x, y int) (*Array, error) {
	var dataRaw, maskRaw []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := v.fetchTileRaw(gctx, v.dir, x, y)
		dataRaw = raw
		return err
	})
	if v.maskDir != nil {
		g.Go(func() error {
			raw, err := v.fetchTileRaw(gctx, v.maskDir, x, y)
			maskRaw = raw
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dtype, err := v.DType()
	if err != nil {
		return nil, err
	}
	crs, err := v.CRS()
	if err != nil {
		return nil, err
	}

	tileTransform := v.transform.Mul(TranslationAffine(float64(x*v.TileWidth()), float64(y*v.TileHeight())))

	array, err := newArray(dataRaw, v.TileWidth(), v.TileHeight(), v.dir.samplesPerPixel(), dtype, v.dir.planarConfiguration(), nil, tileTransform, crs, v.Nodata())
	if err != nil {
		return nil, err
	}

	if maskRaw != nil {
		maskDtype, err := dataTypeFromTags(v.maskDir.sampleFormat(), v.maskDir.bitsPerSample())
		if err != nil {
			return nil, err
		}
		maskPlanes := deinterleave(maskRaw, v.TileWidth(), v.TileHeight(), 1, maskDtype.Size(), v.maskDir.planarConfiguration())
		maskSamples, err := decodeSamples(maskDtype, maskPlanes[0])
		if err != nil {
			return nil, err
		}
		mask := make([]bool, maskSamples.Len())
		for i := range mask {
			mask[i] = maskSamples.Float64At(i) != 0
		}
		array.Mask = mask
	}

	return array, nil
}

// FetchTile fetches a single tile. Decoded tiles are cached, keyed by
// (view, x, y, boundless).
func (v *view) FetchTile(ctx context.Context, x, y int, boundless bool) (*Tile, error) {
	key := tileKey{dirIndex: v.dirIndex, x: x, y: y, boundless: boundless}
	missed := false
	array, err := v.cache.get(ctx, key, func(ctx context.Context, key tileKey) (*Array, error) {
		missed = true
		v.metrics.observeCacheMiss()
		array, err := v.fetchTileArray(ctx, key.x, key.y)
		if err != nil {
			v.metrics.observeTileFetch("error")
			return nil, err
		}
		if !key.boundless {
			clippedWidth := min((key.x+1)*v.TileWidth(), v.Width()) - key.x*v.TileWidth()
			clippedHeight := min((key.y+1)*v.TileHeight(), v.Height()) - key.y*v.TileHeight()
			array = array.clip(clippedWidth, clippedHeight)
		}
		v.metrics.observeTileFetch("ok")
		return array, nil
	})
	if err != nil {
		return nil, err
	}
	if !missed {
		v.metrics.observeCacheHit()
	}
	return &Tile{X: x, Y: y, Array: array}, nil
}

// FetchTiles fetches multiple tiles concurrently.
func (v *view) FetchTiles(ctx context.Context, coords [][2]int, boundless bool) ([]*Tile, error) {
	tiles := make([]*Tile, len(coords))
	g, gctx := errgroup.WithContext(ctx)
	for i, xy := range coords {
		i, xy := i, xy
		g.Go(func() error {
			tile, err := v.FetchTile(gctx, xy[0], xy[1], boundless)
			if err != nil {
				return err
			}
			tiles[i] = tile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tiles, nil
}
