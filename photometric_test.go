package cogtiff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestToRGBBlackIsZero(t *testing.T) {
	bands := [][]uint8{{0, 128, 255}}
	rgb, err := ToRGB(bands, PhotometricBlackIsZero, nil)
	assert.NoError(t, err)
	assert.Equal(t, [3][]uint8{{0, 128, 255}, {0, 128, 255}, {0, 128, 255}}, rgb)
}

func TestToRGBWhiteIsZero(t *testing.T) {
	bands := [][]uint8{{0, 128, 255}}
	rgb, err := ToRGB(bands, PhotometricWhiteIsZero, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), rgb[0][0])
	assert.Equal(t, uint8(0), rgb[0][2])
}

func TestToRGBDirect(t *testing.T) {
	bands := [][]uint8{{1, 2}, {3, 4}, {5, 6}}
	rgb, err := ToRGB(bands, PhotometricRGB, nil)
	assert.NoError(t, err)
	assert.Equal(t, [3][]uint8{{1, 2}, {3, 4}, {5, 6}}, rgb)
}

func TestToRGBMissingBandsErrors(t *testing.T) {
	_, err := ToRGB([][]uint8{{1}, {2}}, PhotometricRGB, nil)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
}

func TestToRGBPaletteRequiresColormap(t *testing.T) {
	_, err := ToRGB([][]uint8{{0}}, PhotometricRGBPalette, nil)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
}

func TestToRGBPalette(t *testing.T) {
	cmap := &Colormap{entries: [][3]uint16{
		{0, 0, 0},
		{0xFFFF, 0x8000, 0},
	}}
	rgb, err := ToRGB([][]uint8{{0, 1}}, PhotometricRGBPalette, cmap)
	assert.NoError(t, err)
	assert.Equal(t, [3][]uint8{{0, 255}, {0, 128}, {0, 0}}, rgb)
}

func TestToRGBPaletteIndexOutOfRange(t *testing.T) {
	cmap := &Colormap{entries: [][3]uint16{{0, 0, 0}}}
	_, err := ToRGB([][]uint8{{5}}, PhotometricRGBPalette, cmap)
	assert.Error(t, err)
}

func TestToRGBUnsupported(t *testing.T) {
	_, err := ToRGB([][]uint8{{0}}, PhotometricTransparencyMask, nil)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindUnsupported))
}

func TestToRGBCMYK(t *testing.T) {
	// Full black (K=255) yields black regardless of CMY.
	bands := [][]uint8{{0}, {0}, {0}, {255}}
	rgb, err := ToRGB(bands, PhotometricCMYK, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), rgb[0][0])
	assert.Equal(t, uint8(0), rgb[1][0])
	assert.Equal(t, uint8(0), rgb[2][0])
}

func TestToRGBYCbCrGray(t *testing.T) {
	// Y=128, Cb=Cr=128 (neutral chroma) should be a gray pixel.
	bands := [][]uint8{{128}, {128}, {128}}
	rgb, err := ToRGB(bands, PhotometricYCbCr, nil)
	assert.NoError(t, err)
	assert.Equal(t, rgb[0][0], rgb[1][0])
	assert.Equal(t, rgb[1][0], rgb[2][0])
}

func TestToRGBCIELabBlack(t *testing.T) {
	// L=0, a*=0, b*=0 is black.
	bands := [][]uint8{{0}, {0}, {0}}
	rgb, err := ToRGB(bands, PhotometricCIELab, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), rgb[0][0])
	assert.Equal(t, uint8(0), rgb[1][0])
	assert.Equal(t, uint8(0), rgb[2][0])
}
