package cogtiff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func testColormap() *Colormap {
	nodata := 1.0
	return &Colormap{
		entries: [][3]uint16{
			{0, 0, 0},
			{0xFFFF, 0xFFFF, 0xFFFF},
		},
		nodata: &nodata,
	}
}

func TestColormapLen(t *testing.T) {
	assert.Equal(t, 2, testColormap().Len())
}

func TestColormapAsArrayEightBit(t *testing.T) {
	got := testColormap().AsArray(true)
	assert.Equal(t, [][3]uint16{{0, 0, 0}, {255, 255, 255}}, got)
}

func TestColormapAsArraySixteenBit(t *testing.T) {
	got := testColormap().AsArray(false)
	assert.Equal(t, [][3]uint16{{0, 0, 0}, {0xFFFF, 0xFFFF, 0xFFFF}}, got)
}

func TestColormapAsDictEightBit(t *testing.T) {
	got, err := testColormap().AsDict(DTypeUint8)
	assert.NoError(t, err)
	assert.Equal(t, map[int][3]uint16{0: {0, 0, 0}, 1: {255, 255, 255}}, got)
}

func TestColormapAsDictSixteenBit(t *testing.T) {
	got, err := testColormap().AsDict(DTypeUint16)
	assert.NoError(t, err)
	assert.Equal(t, map[int][3]uint16{0: {0, 0, 0}, 1: {0xFFFF, 0xFFFF, 0xFFFF}}, got)
}

func TestColormapAsDictUnsupportedDtype(t *testing.T) {
	_, err := testColormap().AsDict(DTypeFloat32)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindUnsupported))
}

func TestColormapAsRasterioMarksNodataTransparent(t *testing.T) {
	got := testColormap().AsRasterio()
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, got[0])
	assert.Equal(t, [4]uint8{255, 255, 255, 0}, got[1])
}

func TestColormapAsRasterioNoNodata(t *testing.T) {
	cmap := &Colormap{entries: [][3]uint16{{0, 0, 0}}}
	got := cmap.AsRasterio()
	assert.Equal(t, uint8(255), got[0][3])
}
