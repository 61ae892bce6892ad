// Package store provides the range-read collaborator the opener and tile
// fetcher use to pull bytes out of object storage, plus the concrete
// backends this package ships: local filesystem, HTTP range requests, and
// S3-compatible object storage.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrOutOfRange is returned by FS when a read-to-end request (length -1)
// starts past the end of the underlying object. A range with an explicit
// length that runs past the end is not an error: FS returns the bytes that
// exist.
var ErrOutOfRange = errors.New("store: range extends past end of object")

// RangeReader reads a byte range from an object identified by path. offset
// and length are zero-based and in bytes; a length of -1 means "read to
// the end of the object", mirroring the semantics of an HTTP suffix-free
// Range header.
type RangeReader interface {
	ReadRange(ctx context.Context, path string, offset int64, length int64) ([]byte, error)
}

// FS adapts an io/fs.FS (e.g. os.DirFS) into a RangeReader, for GeoTIFFs
// held on a local or embedded filesystem.
type FS struct {
	FSys fs.FS
}

// NewFS returns a RangeReader backed by fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{FSys: fsys}
}

func (s *FS) ReadRange(ctx context.Context, path string, offset int64, length int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.FSys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ra, ok := f.(io.ReaderAt)
	if !ok {
		return nil, fmt.Errorf("store: %T does not implement io.ReaderAt", f)
	}

	if length < 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		length = info.Size() - offset
		if length < 0 {
			return nil, ErrOutOfRange
		}
	}

	buf := make([]byte, length)
	n, err := ra.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}
