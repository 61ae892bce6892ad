// Package tiffdecode is a reference (non-core) tile decompressor for the
// TIFF Compression tag values this module's Read Planner needs to turn
// range-read tile bytes into raw pixel bytes. It implements Deflate, LZW,
// LZMA and ZSTD; it deliberately does not implement JPEG, WebP, LERC,
// JPEG2000 or CCITT Group 3/4, which are left to a production decoder —
// see the package-level Non-goals this mirrors.
package tiffdecode

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"golang.org/x/image/tiff/lzw"
)

// Compression mirrors the subset of the TIFF Compression tag (259) this
// package can decode.
type Compression uint16

const (
	CompressionNone    Compression = 1
	CompressionLZW     Compression = 5
	CompressionDeflate Compression = 8
	// CompressionDeflateAdobe is the Adobe-registered alias for Deflate
	// that some encoders (including GDAL) emit instead of 8.
	CompressionDeflateAdobe Compression = 32946
	CompressionLZMA         Compression = 34925
	CompressionZSTD         Compression = 50000
)

// Supported reports whether this package can decompress c.
func Supported(c Compression) bool {
	switch c {
	case CompressionNone, CompressionLZW, CompressionDeflate, CompressionDeflateAdobe, CompressionLZMA, CompressionZSTD:
		return true
	default:
		return false
	}
}

// Decompress decompresses raw tile/strip bytes compressed with c into
// exactly uncompressedSize bytes of pixel data.
func Decompress(c Compression, raw []byte, uncompressedSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(raw) != uncompressedSize {
			return nil, fmt.Errorf("tiffdecode: uncompressed tile has %d bytes, want %d", len(raw), uncompressedSize)
		}
		return raw, nil

	case CompressionLZW:
		return readExactly(lzw.NewReader(bytes.NewReader(raw), lzw.MSB, 8), uncompressedSize)

	case CompressionDeflate, CompressionDeflateAdobe:
		r, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tiffdecode: deflate: %w", err)
		}
		defer r.Close()
		return readExactly(r, uncompressedSize)

	case CompressionLZMA:
		r, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tiffdecode: lzma: %w", err)
		}
		return readExactly(r, uncompressedSize)

	case CompressionZSTD:
		r, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tiffdecode: zstd: %w", err)
		}
		defer r.Close()
		return readExactly(r, uncompressedSize)

	default:
		return nil, fmt.Errorf("tiffdecode: unsupported compression %d", c)
	}
}

func readExactly(r io.Reader, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("tiffdecode: short read: %w", err)
	}
	return out, nil
}
