package store

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3 is a RangeReader backed by an S3-compatible object store, using range
// GET requests so a full GeoTIFF is never downloaded just to read its
// header or a handful of tiles.
type S3 struct {
	client *minio.Client
	bucket string
}

// NewS3 connects to an S3-compatible endpoint and returns a RangeReader
// scoped to bucket.
func NewS3(endpoint, accessKey, secretKey, bucket string, secure bool) (*S3, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}
	client.SetAppInfo("go-cogtiff", "0.1")
	return &S3{client: client, bucket: bucket}, nil
}

func (s *S3) ReadRange(ctx context.Context, path string, offset int64, length int64) ([]byte, error) {
	opts := minio.GetObjectOptions{}
	if length < 0 {
		// SetRange(0, 0) would request only byte 0, so a read to the end from
		// offset 0 sends no Range header and fetches the whole object.
		if offset > 0 {
			if err := opts.SetRange(offset, 0); err != nil {
				return nil, err
			}
		}
	} else {
		if err := opts.SetRange(offset, offset+length-1); err != nil {
			return nil, err
		}
	}

	obj, err := s.client.GetObject(ctx, s.bucket, path, opts)
	if err != nil {
		return nil, fmt.Errorf("store: s3 get %s/%s: %w", s.bucket, path, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("store: s3 read %s/%s: %w", s.bucket, path, err)
	}
	return data, nil
}
