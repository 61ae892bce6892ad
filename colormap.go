package cogtiff

// Colormap represents a GeoTIFF ColorMap tag (320): a lookup table mapping
// single-band sample values to RGB triples, used when the photometric
// interpretation is PhotometricRGBPalette.
type Colormap struct {
	// entries holds one [3]uint16 RGB triple per palette index, as stored
	// in the TIFF tag (full 16-bit range, not yet scaled to 8 bits).
	entries [][3]uint16
	nodata  *float64
}

// Len returns the number of entries in the colormap.
func (c *Colormap) Len() int { return len(c.entries) }

// AsArray returns the colormap as a flat slice of RGB triples. When
// eightBit is true (the common case), each 16-bit channel is scaled down
// to 8 bits the same way libtiff does: value >> 8.
func (c *Colormap) AsArray(eightBit bool) [][3]uint16 {
	out := make([][3]uint16, len(c.entries))
	for i, e := range c.entries {
		if eightBit {
			out[i] = [3]uint16{e[0] >> 8, e[1] >> 8, e[2] >> 8}
		} else {
			out[i] = e
		}
	}
	return out
}

// AsDict returns the colormap as a mapping from palette index to RGB
// triple, scaled to dtype's bit depth. dtype must be DTypeUint8 or
// DTypeUint16; anything else is a KindUnsupported error.
func (c *Colormap) AsDict(dtype DataType) (map[int][3]uint16, error) {
	var eightBit bool
	switch dtype {
	case DTypeUint8:
		eightBit = true
	case DTypeUint16:
		eightBit = false
	default:
		return nil, newError(KindUnsupported, "colormap AsDict: dtype must be uint8 or uint16", nil)
	}

	arr := c.AsArray(eightBit)
	out := make(map[int][3]uint16, len(arr))
	for idx, rgb := range arr {
		out[idx] = rgb
	}
	return out, nil
}

// AsRasterio returns the colormap as a mapping from palette index to an
// 8-bit RGBA color, matching rasterio's DatasetReader.colormap() shape:
// every index gets alpha 255, except the nodata index (if one is set),
// which gets alpha 0.
func (c *Colormap) AsRasterio() map[int][4]uint8 {
	arr := c.AsArray(true)
	out := make(map[int][4]uint8, len(arr))
	for idx, rgb := range arr {
		alpha := uint8(255)
		if c.nodata != nil && float64(idx) == *c.nodata {
			alpha = 0
		}
		out[idx] = [4]uint8{rgb[0], rgb[1], rgb[2], alpha}
	}
	return out
}
