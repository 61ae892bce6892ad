package cogtiff

import "math"

// Affine is a 2D affine transformation matrix, matching the layout and
// semantics of rasterio/affine's Affine class:
//
//	| a b c |   | x |   | a*x + b*y + c |
//	| d e f | * | y | = | d*x + e*y + f |
//	| 0 0 1 |   | 1 |   |       1       |
//
// For a north-up, non-rotated raster, a and e are the pixel size (e is
// negative), b and d are zero, and c, f are the coordinates of the upper
// left corner.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine is the identity transform.
var IdentityAffine = Affine{A: 1, E: 1}

// TranslationAffine returns a translation by (dx, dy).
func TranslationAffine(dx, dy float64) Affine {
	return Affine{A: 1, C: dx, E: 1, F: dy}
}

// ScaleAffine returns a scale by (sx, sy) about the origin.
func ScaleAffine(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Mul composes two affine transforms: (a.Mul(b)) applied to a point is
// equivalent to applying b first, then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// Apply maps pixel coordinates (x, y) to the transform's output space.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// Invert returns the inverse transform. It panics if a is singular, which
// cannot happen for a valid GeoTIFF affine transform (non-zero pixel
// scale).
func (a Affine) Invert() Affine {
	det := a.A*a.E - a.B*a.D
	if det == 0 {
		panic("cogtiff: singular affine transform")
	}
	ia := a.E / det
	ib := -a.B / det
	id := -a.D / det
	ie := a.A / det
	ic := -(ia*a.C + ib*a.F)
	iff := -(id*a.C + ie*a.F)
	return Affine{A: ia, B: ib, C: ic, D: id, E: ie, F: iff}
}

// Res returns the (x, y) pixel resolution implied by this transform. For
// rotated transforms this is the magnitude of each pixel-axis vector, not
// the raw a/e coefficients.
func (a Affine) Res() (float64, float64) {
	return math.Hypot(a.A, a.D), math.Hypot(a.B, a.E)
}
