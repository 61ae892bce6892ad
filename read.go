package cogtiff

import (
	"context"
	"fmt"
)

// Read assembles a windowed read by covering window with the tiles it
// overlaps, fetching them boundlessly, and stitching the overlapping
// region of each into a freshly allocated Array, per original_source's
// ReadMixin.read / assemble_tiles.
func (v *view) Read(ctx context.Context, window Window) (*Array, error) {
	if window.ColOff+window.Width > v.Width() || window.RowOff+window.Height > v.Height() {
		return nil, newError(KindWindow, fmt.Sprintf(
			"window %s extends past image bounds (%dx%d)", window, v.Width(), v.Height()), nil)
	}

	tileW, tileH := v.TileWidth(), v.TileHeight()

	txStart := window.ColOff / tileW
	txStop := (window.ColOff+window.Width-1)/tileW + 1
	tyStart := window.RowOff / tileH
	tyStop := (window.RowOff+window.Height-1)/tileH + 1

	var coords [][2]int
	for ty := tyStart; ty < tyStop; ty++ {
		for tx := txStart; tx < txStop; tx++ {
			coords = append(coords, [2]int{tx, ty})
		}
	}

	tiles, err := v.FetchTiles(ctx, coords, true)
	if err != nil {
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

	bands := v.dir.samplesPerPixel()
	out := newEmptyArray(window.Width, window.Height, bands, dtype)

	var outMask []bool
	if v.maskDir != nil {
		outMask = make([]bool, window.Width*window.Height)
	}

	for _, tile := range tiles {
		tileRect := Window{ColOff: tile.X * tileW, RowOff: tile.Y * tileH, Width: tile.Array.Width, Height: tile.Array.Height}
		overlap, err := window.Intersection(tileRect)
		if err != nil {
			continue
		}

		srcRow, srcCol := overlap.RowOff-tileRect.RowOff, overlap.ColOff-tileRect.ColOff
		dstRow, dstCol := overlap.RowOff-window.RowOff, overlap.ColOff-window.ColOff

		for b := 0; b < bands && b < len(tile.Array.Data); b++ {
			blitSamples(out.Data[b], window.Width, dstRow, dstCol, tile.Array.Data[b], tile.Array.Width, srcRow, srcCol, overlap.Width, overlap.Height)
		}
		if outMask != nil && tile.Array.Mask != nil {
			blitBoolPlane(outMask, window.Width, dstRow, dstCol, tile.Array.Mask, tile.Array.Width, srcRow, srcCol, overlap.Width, overlap.Height)
		}
	}

	out.Mask = outMask
	out.Transform = v.transform.Mul(TranslationAffine(float64(window.ColOff), float64(window.RowOff)))
	out.CRS = crs
	out.Nodata = v.Nodata()
	return out, nil
}

// newEmptyArray allocates a zero-valued Array of the given shape and dtype,
// ready for Read to blit tile contents into.
func newEmptyArray(width, height, bands int, dtype DataType) *Array {
	data := make([]Samples, bands)
	for i := range data {
		data[i] = zeroSamples(dtype, width*height)
	}
	return &Array{Data: data, Width: width, Height: height, Count: bands}
}

func zeroSamples(dtype DataType, n int) Samples {
	switch dtype {
	case DTypeUint8:
		return NewTypedSamples(make([]uint8, n), dtype)
	case DTypeInt8:
		return NewTypedSamples(make([]int8, n), dtype)
	case DTypeUint16:
		return NewTypedSamples(make([]uint16, n), dtype)
	case DTypeInt16:
		return NewTypedSamples(make([]int16, n), dtype)
	case DTypeUint32:
		return NewTypedSamples(make([]uint32, n), dtype)
	case DTypeInt32:
		return NewTypedSamples(make([]int32, n), dtype)
	case DTypeUint64:
		return NewTypedSamples(make([]uint64, n), dtype)
	case DTypeInt64:
		return NewTypedSamples(make([]int64, n), dtype)
	case DTypeFloat32:
		return NewTypedSamples(make([]float32, n), dtype)
	case DTypeFloat64:
		return NewTypedSamples(make([]float64, n), dtype)
	default:
		return NewTypedSamples(make([]uint8, n), dtype)
	}
}

// blitSamples copies a (width, height) rectangle from src at (srcRow,
// srcCol) into dst at (dstRow, dstCol). dst and src must share a dtype,
// which always holds here since both come from the same view.
func blitSamples(dst Samples, dstWidth, dstRow, dstCol int, src Samples, srcWidth, srcRow, srcCol, width, height int) {
	switch d := dst.(type) {
	case *TypedSamples[uint8]:
		if s, ok := src.(*TypedSamples[uint8]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[int8]:
		if s, ok := src.(*TypedSamples[int8]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[uint16]:
		if s, ok := src.(*TypedSamples[uint16]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[int16]:
		if s, ok := src.(*TypedSamples[int16]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[uint32]:
		if s, ok := src.(*TypedSamples[uint32]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[int32]:
		if s, ok := src.(*TypedSamples[int32]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[uint64]:
		if s, ok := src.(*TypedSamples[uint64]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[int64]:
		if s, ok := src.(*TypedSamples[int64]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[float32]:
		if s, ok := src.(*TypedSamples[float32]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	case *TypedSamples[float64]:
		if s, ok := src.(*TypedSamples[float64]); ok {
			blitSlice(d.Values, dstWidth, dstRow, dstCol, s.Values, srcWidth, srcRow, srcCol, width, height)
		}
	}
}

func blitSlice[T SampleValue](dst []T, dstWidth, dstRow, dstCol int, src []T, srcWidth, srcRow, srcCol, width, height int) {
	for row := 0; row < height; row++ {
		dstOff := (dstRow+row)*dstWidth + dstCol
		srcOff := (srcRow+row)*srcWidth + srcCol
		copy(dst[dstOff:dstOff+width], src[srcOff:srcOff+width])
	}
}

func blitBoolPlane(dst []bool, dstWidth, dstRow, dstCol int, src []bool, srcWidth, srcRow, srcCol, width, height int) {
	for row := 0; row < height; row++ {
		dstOff := (dstRow+row)*dstWidth + dstCol
		srcOff := (srcRow+row)*srcWidth + srcCol
		copy(dst[dstOff:dstOff+width], src[srcOff:srcOff+width])
	}
}
