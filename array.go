package cogtiff

// Array is pixel data read from a GeoTIFF, together with enough
// georeferencing metadata to place it in space. Data always holds one
// Samples per band in (band, height, width) row-major order, regardless
// of whether the source TIFF stored pixels chunky- or planar-interleaved.
type Array struct {
	Data []Samples
	// Mask holds one bool per pixel (row-major, length Width*Height) when
	// the image has an associated mask IFD. true means valid data, false
	// means masked out — the inverse of numpy.ma's convention, matching
	// the mask IFD's own encoding.
	Mask []bool

	Width  int
	Height int
	Count  int

	Transform Affine
	CRS       *CRS
	Nodata    *float64
}

// deinterleave splits a raw tile/strip byte buffer into one byte slice per
// band, undoing chunky (pixel-interleaved) storage so every band ends up
// contiguous in (height, width) row-major order. Planar storage is already
// in that order and is split evenly.
func deinterleave(raw []byte, width, height, bands int, sampleSize int, planar PlanarConfiguration) [][]byte {
	pixels := width * height
	out := make([][]byte, bands)
	for b := range out {
		out[b] = make([]byte, pixels*sampleSize)
	}

	if planar == PlanarPlanar {
		bandBytes := pixels * sampleSize
		for b := range out {
			copy(out[b], raw[b*bandBytes:(b+1)*bandBytes])
		}
		return out
	}

	// Chunky: pixel p's bands are contiguous: [b0,b1,...,bN, b0,b1,...]
	stride := bands * sampleSize
	for p := 0; p < pixels; p++ {
		pixelOff := p * stride
		for b := 0; b < bands; b++ {
			src := raw[pixelOff+b*sampleSize : pixelOff+(b+1)*sampleSize]
			copy(out[b][p*sampleSize:(p+1)*sampleSize], src)
		}
	}
	return out
}

// newArray decodes a raw decompressed tile/strip buffer into an Array.
func newArray(raw []byte, width, height, bands int, dtype DataType, planar PlanarConfiguration, mask []bool, transform Affine, crs *CRS, nodata *float64) (*Array, error) {
	planes := deinterleave(raw, width, height, bands, dtype.Size(), planar)
	data := make([]Samples, bands)
	for i, plane := range planes {
		samples, err := decodeSamples(dtype, plane)
		if err != nil {
			return nil, err
		}
		data[i] = samples
	}
	return &Array{
		Data:      data,
		Mask:      mask,
		Width:     width,
		Height:    height,
		Count:     bands,
		Transform: transform,
		CRS:       crs,
		Nodata:    nodata,
	}, nil
}

// MaskOrNodata returns a validity mask for the array's first band: true
// means valid, false means invalid. If the array carries an explicit mask
// IFD (Mask != nil) that is returned directly; otherwise, if a nodata
// value is set, pixels equal to it in band 0 are marked invalid; otherwise
// every pixel is considered valid.
//
// This mirrors the Python source's as_masked(), inverted to this
// package's "true means valid" convention rather than numpy.ma's
// "true means invalid".
func (a *Array) MaskOrNodata() []bool {
	if a.Mask != nil {
		return a.Mask
	}

	valid := make([]bool, a.Width*a.Height)
	for i := range valid {
		valid[i] = true
	}
	if a.Nodata == nil || len(a.Data) == 0 {
		return valid
	}

	band := a.Data[0]
	for i := 0; i < band.Len(); i++ {
		if band.Float64At(i) == *a.Nodata {
			valid[i] = false
		}
	}
	return valid
}

// clip returns a copy of a containing only the pixels of the top-left
// clippedWidth x clippedHeight rectangle, used when fetching an edge tile
// with boundless=false.
func (a *Array) clip(clippedWidth, clippedHeight int) *Array {
	if clippedWidth == a.Width && clippedHeight == a.Height {
		return a
	}

	data := make([]Samples, len(a.Data))
	for i, band := range a.Data {
		data[i] = clipSamples(band, a.Width, clippedWidth, clippedHeight)
	}

	var mask []bool
	if a.Mask != nil {
		mask = clipBoolPlane(a.Mask, a.Width, clippedWidth, clippedHeight)
	}

	return &Array{
		Data:      data,
		Mask:      mask,
		Width:     clippedWidth,
		Height:    clippedHeight,
		Count:     a.Count,
		Transform: a.Transform,
		CRS:       a.CRS,
		Nodata:    a.Nodata,
	}
}

func clipBoolPlane(plane []bool, srcWidth, width, height int) []bool {
	out := make([]bool, width*height)
	for row := 0; row < height; row++ {
		copy(out[row*width:(row+1)*width], plane[row*srcWidth:row*srcWidth+width])
	}
	return out
}

func clipSamples(s Samples, srcWidth, width, height int) Samples {
	switch t := s.(type) {
	case *TypedSamples[uint8]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[int8]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[uint16]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[int16]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[uint32]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[int32]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[uint64]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[int64]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[float32]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	case *TypedSamples[float64]:
		return NewTypedSamples(clipSlice(t.Values, srcWidth, width, height), t.dtype)
	default:
		return s
	}
}

func clipSlice[T SampleValue](values []T, srcWidth, width, height int) []T {
	out := make([]T, width*height)
	for row := 0; row < height; row++ {
		copy(out[row*width:(row+1)*width], values[row*srcWidth:row*srcWidth+width])
	}
	return out
}
