package cogtiff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func newDir(index int, width, height uint32) *imageDirectory {
	return &imageDirectory{
		index: index,
		raw: rawIFD{
			ImageWidth:         width,
			ImageLength:        height,
			GeoKeyDirectoryTag: []uint16{1, 1, 0, 1, 1024, 0, 1, 1},
		},
	}
}

func newMaskDir(index int, width, height uint32) *imageDirectory {
	d := newDir(index, width, height)
	d.raw.NewSubfileType = newSubfileTypeMask
	d.raw.PhotometricInterpretation = uint16(PhotometricTransparencyMask)
	d.raw.GeoKeyDirectoryTag = nil
	return d
}

func TestClassifyPrimaryOnly(t *testing.T) {
	primary, overviews, err := classify([]*imageDirectory{newDir(0, 100, 100)})
	assert.NoError(t, err)
	assert.Equal(t, 100, primary.dir.width())
	assert.Equal(t, 0, len(overviews))
	assert.True(t, primary.maskDir == nil)
}

func TestClassifyWithMaskAndOverviews(t *testing.T) {
	dirs := []*imageDirectory{
		newDir(0, 512, 512),
		newMaskDir(1, 512, 512),
		newDir(2, 256, 256),
		newDir(3, 128, 128),
		newMaskDir(4, 256, 256),
	}
	primary, overviews, err := classify(dirs)
	assert.NoError(t, err)
	assert.Equal(t, 512, primary.dir.width())
	assert.Equal(t, 1, primary.maskDir.index)

	assert.Equal(t, 2, len(overviews))
	// Sorted by pixel count descending: 256x256 before 128x128.
	assert.Equal(t, 256, overviews[0].dir.width())
	assert.Equal(t, 4, overviews[0].maskDir.index)
	assert.Equal(t, 128, overviews[1].dir.width())
	assert.True(t, overviews[1].maskDir == nil)
}

func TestClassifyNoIFDs(t *testing.T) {
	_, _, err := classify(nil)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindOpen))
}

func TestClassifyFirstIFDNotGeoTIFF(t *testing.T) {
	d := newDir(0, 10, 10)
	d.raw.GeoKeyDirectoryTag = nil
	_, _, err := classify([]*imageDirectory{d})
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindOpen))
}

func TestClassifyDuplicateOverviewDimensions(t *testing.T) {
	dirs := []*imageDirectory{
		newDir(0, 512, 512),
		newDir(1, 256, 256),
		newDir(2, 256, 256),
	}
	_, _, err := classify(dirs)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindClassify))
}

func TestClassifyDuplicateMaskDimensions(t *testing.T) {
	dirs := []*imageDirectory{
		newDir(0, 512, 512),
		newMaskDir(1, 512, 512),
		newMaskDir(2, 512, 512),
	}
	_, _, err := classify(dirs)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindClassify))
}

func TestClassifyAllMasksNoImages(t *testing.T) {
	dirs := []*imageDirectory{newMaskDir(0, 512, 512)}
	_, _, err := classify(dirs)
	assert.Error(t, err)
	assert.True(t, IsKind(err, KindClassify))
}
