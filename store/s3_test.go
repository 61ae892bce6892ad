package store

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewS3Constructs(t *testing.T) {
	s, err := NewS3("s3.example.com", "access", "secret", "bucket", true)
	assert.NoError(t, err)
	assert.Equal(t, "bucket", s.bucket)
}

func TestNewS3ScopesToBucket(t *testing.T) {
	s, err := NewS3("s3.example.com", "access", "secret", "other-bucket", false)
	assert.NoError(t, err)
	assert.Equal(t, "other-bucket", s.bucket)
}
