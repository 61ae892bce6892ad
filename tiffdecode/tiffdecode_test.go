package tiffdecode

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

func TestSupported(t *testing.T) {
	for _, c := range []Compression{
		CompressionNone, CompressionLZW, CompressionDeflate,
		CompressionDeflateAdobe, CompressionLZMA, CompressionZSTD,
	} {
		assert.True(t, Supported(c))
	}
	assert.False(t, Supported(Compression(9999)))
}

func TestDecompressNone(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	got, err := Decompress(CompressionNone, raw, 4)
	assert.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecompressNoneWrongSize(t *testing.T) {
	_, err := Decompress(CompressionNone, []byte{1, 2, 3}, 4)
	assert.Error(t, err)
}

func TestDecompressDeflate(t *testing.T) {
	want := []byte("hello, cogtiff tile bytes")
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(want)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	got, err := Decompress(CompressionDeflate, buf.Bytes(), len(want))
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecompressDeflateAdobeAlias(t *testing.T) {
	want := []byte("adobe deflate alias")
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(want)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	got, err := Decompress(CompressionDeflateAdobe, buf.Bytes(), len(want))
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecompressZSTD(t *testing.T) {
	want := []byte("zstd compressed tile data, repeated repeated repeated")
	enc, err := zstd.NewWriter(nil)
	assert.NoError(t, err)
	compressed := enc.EncodeAll(want, nil)
	assert.NoError(t, enc.Close())

	got, err := Decompress(CompressionZSTD, compressed, len(want))
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecompressLZMA(t *testing.T) {
	want := []byte("lzma compressed tile data")
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	assert.NoError(t, err)
	_, err = w.Write(want)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	got, err := Decompress(CompressionLZMA, buf.Bytes(), len(want))
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecompressUnsupported(t *testing.T) {
	_, err := Decompress(Compression(9999), []byte{1}, 1)
	assert.Error(t, err)
}

func TestDecompressDeflateCorruptData(t *testing.T) {
	_, err := Decompress(CompressionDeflate, []byte{0xff, 0xff, 0xff}, 10)
	assert.Error(t, err)
}
