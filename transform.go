package cogtiff

// transformFromTags builds the pixel-to-CRS affine transform for a
// directory from its GeoTIFF georeferencing tags, per original_source's
// _transform.py. ModelTransformationTag (a full 4x4 matrix) takes
// precedence over the ModelPixelScaleTag/ModelTiepointTag pair, matching
// the GeoTIFF spec's own precedence rule.
func transformFromTags(d *imageDirectory) (Affine, error) {
	if len(d.raw.ModelTransformationTag) == 16 {
		m := d.raw.ModelTransformationTag
		return Affine{A: m[0], B: m[1], C: m[3], D: m[4], E: m[5], F: m[7]}, nil
	}

	if len(d.raw.ModelPixelScaleTag) == 3 && len(d.raw.ModelTiepointTag) == 6 {
		sx, sy := d.raw.ModelPixelScaleTag[0], d.raw.ModelPixelScaleTag[1]
		i, j := d.raw.ModelTiepointTag[0], d.raw.ModelTiepointTag[1]
		x, y := d.raw.ModelTiepointTag[3], d.raw.ModelTiepointTag[4]
		return Affine{
			A: sx, B: 0, C: x - i*sx,
			D: 0, E: -sy, F: y + j*sy,
		}, nil
	}

	return Affine{}, newError(KindOpen, "IFD has no ModelTransformationTag or ModelPixelScaleTag/ModelTiepointTag pair", nil)
}
