package cogtiff

import (
	"fmt"
	"sort"
)

// classifiedDirectory pairs an image directory with its mask directory (if
// any), keyed by matching (width, height).
type classifiedDirectory struct {
	dir     *imageDirectory
	maskDir *imageDirectory
}

// classify partitions a TIFF's IFD chain into the primary image, its mask
// (if present), and the overview pyramid.
//
// The first IFD is always the primary image. Mask IFDs are identified by
// NewSubfileType bit 2 plus a TransparencyMask photometric interpretation,
// and are associated with the primary or an overview by matching
// dimensions. Remaining non-mask IFDs are overviews, sorted by pixel
// count descending (largest/finest first).
func classify(dirs []*imageDirectory) (primary *classifiedDirectory, overviews []*classifiedDirectory, err error) {
	if len(dirs) == 0 {
		return nil, nil, newError(KindOpen, "TIFF has no IFDs", nil)
	}
	if !dirs[0].hasGeoKeys() {
		return nil, nil, newError(KindOpen, "first IFD has no GeoKeyDirectory; not a GeoTIFF", nil)
	}

	masksByDims := make(map[[2]int]*imageDirectory)
	var images []*imageDirectory
	for _, d := range dirs {
		if d.isMask() {
			dims := [2]int{d.width(), d.height()}
			if _, exists := masksByDims[dims]; exists {
				return nil, nil, newError(KindClassify, fmt.Sprintf("duplicate mask IFD for dimensions %dx%d", dims[0], dims[1]), nil)
			}
			masksByDims[dims] = d
			continue
		}
		images = append(images, d)
	}

	if len(images) == 0 {
		return nil, nil, newError(KindClassify, "TIFF has no non-mask image IFDs", nil)
	}

	primaryDims := [2]int{images[0].width(), images[0].height()}
	primary = &classifiedDirectory{dir: images[0], maskDir: masksByDims[primaryDims]}

	seenDims := map[[2]int]bool{primaryDims: true}
	rest := images[1:]
	for _, d := range rest {
		dims := [2]int{d.width(), d.height()}
		if seenDims[dims] {
			return nil, nil, newError(KindClassify, fmt.Sprintf("duplicate overview dimensions %dx%d", dims[0], dims[1]), nil)
		}
		seenDims[dims] = true
		overviews = append(overviews, &classifiedDirectory{dir: d, maskDir: masksByDims[dims]})
	}

	sort.SliceStable(overviews, func(i, j int) bool {
		return overviews[i].dir.width()*overviews[i].dir.height() > overviews[j].dir.width()*overviews[j].dir.height()
	})

	return primary, overviews, nil
}
