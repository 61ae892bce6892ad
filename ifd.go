package cogtiff

import (
	"strconv"
	"strings"

	"github.com/google/tiff"
)

// PhotometricInterpretation mirrors the TIFF PhotometricInterpretation tag
// (262), restricted to the values this package understands.
type PhotometricInterpretation uint16

const (
	PhotometricWhiteIsZero      PhotometricInterpretation = 0
	PhotometricBlackIsZero      PhotometricInterpretation = 1
	PhotometricRGB              PhotometricInterpretation = 2
	PhotometricRGBPalette       PhotometricInterpretation = 3
	PhotometricTransparencyMask PhotometricInterpretation = 4
	PhotometricCMYK             PhotometricInterpretation = 5
	PhotometricYCbCr            PhotometricInterpretation = 6
	PhotometricCIELab           PhotometricInterpretation = 8
)

// PlanarConfiguration mirrors the TIFF PlanarConfiguration tag (284).
type PlanarConfiguration uint16

const (
	PlanarChunky PlanarConfiguration = 1 // pixel-interleaved: (H, W, C)
	PlanarPlanar PlanarConfiguration = 2 // band-interleaved: (C, H, W)
)

// SampleFormat mirrors the TIFF SampleFormat tag (339).
type SampleFormat uint16

const (
	SampleFormatUint    SampleFormat = 1
	SampleFormatInt     SampleFormat = 2
	SampleFormatIEEEFP  SampleFormat = 3
	SampleFormatVoid    SampleFormat = 4
	SampleFormatComplex SampleFormat = 5
)

// Compression mirrors the subset of TIFF Compression tag (259) values this
// package's reference decoder (package tiffdecode) understands, plus values
// that are recognized in IFDs but not validated by decoding a tile.
type Compression uint16

const (
	CompressionNone         Compression = 1
	CompressionLZW          Compression = 5
	CompressionJPEGOld      Compression = 6
	CompressionJPEG         Compression = 7
	CompressionDeflate      Compression = 8
	CompressionPackBits     Compression = 32773
	CompressionDeflateAdobe Compression = 32946
	CompressionLZMA         Compression = 34925
	CompressionZSTD         Compression = 50000
	CompressionWebP         Compression = 50001
	CompressionLERC         Compression = 34887
	CompressionJPEG2000     Compression = 34712
	CompressionCCITTFax3    Compression = 3
	CompressionCCITTFax4    Compression = 4
)

// newSubfileTypeMask is NewSubfileType bit 2 (value 4), which marks a
// transparency mask; the "reduced resolution" flag is bit 0 (value 1).
const newSubfileTypeMask = 4

// rawIFD is the struct google/tiff unmarshals each IFD's tags into, covering
// every tag the Classifier, Image View, and Geo Key Resolver components
// require.
type rawIFD struct {
	NewSubfileType            uint32    `tiff:"field,tag=254"`
	ImageWidth                uint32    `tiff:"field,tag=256"`
	ImageLength               uint32    `tiff:"field,tag=257"`
	BitsPerSample             []uint16  `tiff:"field,tag=258"`
	Compression               uint16    `tiff:"field,tag=259"`
	PhotometricInterpretation uint16    `tiff:"field,tag=262"`
	SamplesPerPixel           uint16    `tiff:"field,tag=277"`
	PlanarConfiguration       uint16    `tiff:"field,tag=284"`
	TileWidth                 uint32    `tiff:"field,tag=322"`
	TileLength                uint32    `tiff:"field,tag=323"`
	TileOffsets               []uint64  `tiff:"field,tag=324"`
	TileByteCounts            []uint64  `tiff:"field,tag=325"`
	ColorMap                  []uint16  `tiff:"field,tag=320"`
	SampleFormat              []uint16  `tiff:"field,tag=339"`
	ModelPixelScaleTag        []float64 `tiff:"field,tag=33550"`
	ModelTiepointTag          []float64 `tiff:"field,tag=33922"`
	ModelTransformationTag    []float64 `tiff:"field,tag=34264"`
	GeoKeyDirectoryTag        []uint16  `tiff:"field,tag=34735"`
	GeoDoubleParamsTag        []float64 `tiff:"field,tag=34736"`
	GeoASCIIParamsTag         string    `tiff:"field,tag=34737"`
	GDALMetadata              string    `tiff:"field,tag=42112"`
	GDALNoData                string    `tiff:"field,tag=42113"`
}

// imageDirectory is this package's decoded view of one TIFF IFD.
type imageDirectory struct {
	raw   rawIFD
	index int // position in tiff.TIFF.IFDs(), needed to request tiles from it
	ifd   tiff.IFD
}

func decodeIFDs(t tiff.TIFF) ([]*imageDirectory, error) {
	raw := t.IFDs()
	dirs := make([]*imageDirectory, len(raw))
	for i, ifd := range raw {
		var r rawIFD
		if err := tiff.UnmarshalIFD(ifd, &r); err != nil {
			return nil, newError(KindOpen, "failed to unmarshal IFD", err)
		}
		dirs[i] = &imageDirectory{raw: r, index: i, ifd: ifd}
	}
	return dirs, nil
}

func (d *imageDirectory) width() int  { return int(d.raw.ImageWidth) }
func (d *imageDirectory) height() int { return int(d.raw.ImageLength) }

func (d *imageDirectory) tileWidth() int {
	if d.raw.TileWidth == 0 {
		return d.width()
	}
	return int(d.raw.TileWidth)
}

func (d *imageDirectory) tileHeight() int {
	if d.raw.TileLength == 0 {
		return d.height()
	}
	return int(d.raw.TileLength)
}

func (d *imageDirectory) isMask() bool {
	return d.raw.NewSubfileType&newSubfileTypeMask != 0 &&
		PhotometricInterpretation(d.raw.PhotometricInterpretation) == PhotometricTransparencyMask
}

func (d *imageDirectory) hasGeoKeys() bool {
	return len(d.raw.GeoKeyDirectoryTag) >= 4
}

func (d *imageDirectory) geoKeys() (*ParsedGeoKeys, error) {
	asciiParams := []byte(d.raw.GeoASCIIParamsTag)
	return ParseGeoKeys(d.raw.GeoKeyDirectoryTag, d.raw.GeoDoubleParamsTag, asciiParams)
}

func (d *imageDirectory) sampleFormat() SampleFormat {
	if len(d.raw.SampleFormat) == 0 {
		return SampleFormatUint
	}
	return SampleFormat(d.raw.SampleFormat[0])
}

func (d *imageDirectory) bitsPerSample() int {
	if len(d.raw.BitsPerSample) == 0 {
		return 8
	}
	return int(d.raw.BitsPerSample[0])
}

// uniformSampleFormat validates that sample_format and bits_per_sample are
// uniform across bands.
func (d *imageDirectory) uniformSampleFormat() error {
	for _, b := range d.raw.BitsPerSample {
		if int(b) != d.bitsPerSample() {
			return newError(KindUnsupported, "mixed bits_per_sample across bands", nil)
		}
	}
	for _, f := range d.raw.SampleFormat {
		if SampleFormat(f) != d.sampleFormat() {
			return newError(KindUnsupported, "mixed sample_format across bands", nil)
		}
	}
	return nil
}

func (d *imageDirectory) planarConfiguration() PlanarConfiguration {
	if d.raw.PlanarConfiguration == 0 {
		return PlanarChunky
	}
	return PlanarConfiguration(d.raw.PlanarConfiguration)
}

func (d *imageDirectory) photometric() PhotometricInterpretation {
	return PhotometricInterpretation(d.raw.PhotometricInterpretation)
}

func (d *imageDirectory) samplesPerPixel() int {
	if d.raw.SamplesPerPixel == 0 {
		return 1
	}
	return int(d.raw.SamplesPerPixel)
}

func (d *imageDirectory) colormap() *Colormap {
	if len(d.raw.ColorMap) == 0 {
		return nil
	}
	n := len(d.raw.ColorMap) / 3
	entries := make([][3]uint16, n)
	// TIFF stores the colormap as three separate N-length ramps
	// (all red, then all green, then all blue), not interleaved triples.
	for i := 0; i < n; i++ {
		entries[i] = [3]uint16{d.raw.ColorMap[i], d.raw.ColorMap[n+i], d.raw.ColorMap[2*n+i]}
	}
	return &Colormap{entries: entries, nodata: d.nodata()}
}

// nodata parses the GDAL_NODATA tag, which stores the nodata value as a
// decimal string, e.g. "-3.4028234663852886e+038" or "255".
func (d *imageDirectory) nodata() *float64 {
	s := strings.TrimSpace(d.raw.GDALNoData)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
