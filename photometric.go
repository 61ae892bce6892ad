package cogtiff

import "math"

// ToRGB converts decoded band planes to 8-bit RGB. bands holds one flat,
// row-major plane per sample (length width*height each); the returned
// [3][]uint8 holds the red, green and blue planes in the same layout.
//
// Any other photometric interpretation (e.g. TransparencyMask) returns a
// KindUnsupported error.
func ToRGB(bands [][]uint8, photometric PhotometricInterpretation, colormap *Colormap) ([3][]uint8, error) {
	switch photometric {
	case PhotometricRGB:
		if len(bands) < 3 {
			return [3][]uint8{}, newError(KindDecode, "RGB photometric interpretation requires 3 bands", nil)
		}
		return [3][]uint8{bands[0], bands[1], bands[2]}, nil

	case PhotometricRGBPalette:
		if colormap == nil {
			return [3][]uint8{}, newError(KindDecode, "colormap required for RGBPalette photometric interpretation", nil)
		}
		return fromPalette(bands[0], colormap)

	case PhotometricBlackIsZero:
		return [3][]uint8{bands[0], bands[0], bands[0]}, nil

	case PhotometricWhiteIsZero:
		inverted := make([]uint8, len(bands[0]))
		for i, v := range bands[0] {
			inverted[i] = 255 - v
		}
		return [3][]uint8{inverted, inverted, inverted}, nil

	case PhotometricCMYK:
		if len(bands) < 4 {
			return [3][]uint8{}, newError(KindDecode, "CMYK photometric interpretation requires 4 bands", nil)
		}
		return fromCMYK(bands[0], bands[1], bands[2], bands[3]), nil

	case PhotometricYCbCr:
		if len(bands) < 3 {
			return [3][]uint8{}, newError(KindDecode, "YCbCr photometric interpretation requires 3 bands", nil)
		}
		return fromYCbCr(bands[0], bands[1], bands[2]), nil

	case PhotometricCIELab:
		if len(bands) < 3 {
			return [3][]uint8{}, newError(KindDecode, "CIELab photometric interpretation requires 3 bands", nil)
		}
		return fromCIELab(bands[0], bands[1], bands[2]), nil

	default:
		return [3][]uint8{}, newError(KindUnsupported, "no RGB conversion for this photometric interpretation", nil)
	}
}

func fromPalette(indices []uint8, colormap *Colormap) ([3][]uint8, error) {
	cmap := colormap.AsArray(true)
	r := make([]uint8, len(indices))
	g := make([]uint8, len(indices))
	b := make([]uint8, len(indices))
	for i, idx := range indices {
		if int(idx) >= len(cmap) {
			return [3][]uint8{}, newError(KindDecode, "palette index out of range of colormap", nil)
		}
		rgb := cmap[idx]
		r[i], g[i], b[i] = uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])
	}
	return [3][]uint8{r, g, b}, nil
}

// https://github.com/geotiffjs/geotiff.js/blob/903125bdf8ebe327c4a4353f1e0311302452b9e9/src/rgb.ts#L52-L66
func fromCMYK(c, m, y, k []uint8) [3][]uint8 {
	n := len(c)
	r := make([]uint8, n)
	g := make([]uint8, n)
	b := make([]uint8, n)
	for i := range c {
		cf, mf, yf, kf := float32(c[i]), float32(m[i]), float32(y[i]), float32(k[i])
		r[i] = uint8(255 * ((255 - cf) / 256) * ((255 - kf) / 256))
		g[i] = uint8(255 * ((255 - mf) / 256) * ((255 - kf) / 256))
		b[i] = uint8(255 * ((255 - yf) / 256) * ((255 - kf) / 256))
	}
	return [3][]uint8{r, g, b}
}

// https://github.com/geotiffjs/geotiff.js/blob/903125bdf8ebe327c4a4353f1e0311302452b9e9/src/rgb.ts#L68-L83
func fromYCbCr(y, cb, cr []uint8) [3][]uint8 {
	n := len(y)
	r := make([]uint8, n)
	g := make([]uint8, n)
	b := make([]uint8, n)
	for i := range y {
		yf, cbf, crf := float32(y[i]), float32(cb[i]), float32(cr[i])
		rf := yf + 1.402*(crf-128)
		gf := yf - 0.34414*(cbf-128) - 0.71414*(crf-128)
		bf := yf + 1.772*(cbf-128)
		r[i] = clamp8(rf)
		g[i] = clamp8(gf)
		b[i] = clamp8(bf)
	}
	return [3][]uint8{r, g, b}
}

// CIELab reference white point (D65 illuminant) and conversion thresholds,
// matching the constants geotiff.js and this package's reference source use.
const (
	cielabXN           = 0.95047
	cielabYN           = 1.0
	cielabZN           = 1.08883
	cielabEpsilon      = 0.008856
	linearRGBThreshold = 0.0031308
)

// fromCIELab converts CIELab to RGB, matching
// https://github.com/antimatter15/rgb-lab/blob/master/color.js. l is uint8
// [0, 255]; aStar and bStar are int8 [-128, 127] stored as uint8.
//
// https://github.com/geotiffjs/geotiff.js/blob/903125bdf8ebe327c4a4353f1e0311302452b9e9/src/rgb.ts#L91-L124
func fromCIELab(l, aStar, bStar []uint8) [3][]uint8 {
	n := len(l)
	r := make([]uint8, n)
	g := make([]uint8, n)
	b := make([]uint8, n)
	for i := range l {
		lf := float64(l[i])
		af := float64(int8(aStar[i]))
		bf := float64(int8(bStar[i]))

		y := (lf + 16) / 116
		x := af/500 + y
		z := y - bf/200

		x = invF(x)
		y = invF(y)
		z = invF(z)

		x *= cielabXN
		y *= cielabYN
		z *= cielabZN

		rf := x*3.2406 + y*-1.5372 + z*-0.4986
		gf := x*-0.9689 + y*1.8758 + z*0.0415
		bf2 := x*0.0557 + y*-0.204 + z*1.057

		rf = gammaCorrect(rf)
		gf = gammaCorrect(gf)
		bf2 = gammaCorrect(bf2)

		r[i] = uint8(clampUnit(rf) * 255)
		g[i] = uint8(clampUnit(gf) * 255)
		b[i] = uint8(clampUnit(bf2) * 255)
	}
	return [3][]uint8{r, g, b}
}

func invF(t float64) float64 {
	if t3 := t * t * t; t3 > cielabEpsilon {
		return t3
	}
	return (t - 16.0/116.0) / 7.787
}

func gammaCorrect(c float64) float64 {
	if c > linearRGBThreshold {
		return 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return 12.92 * c
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
