package cogtiff

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/tiff"
	_ "github.com/google/tiff/bigtiff"
	_ "github.com/google/tiff/geotiff"

	"github.com/developmentseed/go-cogtiff/store"
)

// defaultPrefetchBytes is the size of the first speculative read Open
// issues against the object, before it knows how large the IFD chain is.
// defaultPrefetchMultiplier is how much that read grows on each retry.
// Both match original_source's GeoTIFF.open(prefetch=32768, multiplier=2.0).
const (
	defaultPrefetchBytes      = 32768
	defaultPrefetchMultiplier = 2.0
	maxPrefetchAttempts       = 10
)

type openConfig struct {
	tileCacheSize      int
	metrics            *Metrics
	prefetchBytes      int64
	prefetchMultiplier float64
}

// Option configures Open using the standard functional-options pattern.
type Option func(*openConfig)

// WithTileCacheSize bounds the decoded-tile cache shared by a GeoTIFF and
// its overviews to at most n tiles.
func WithTileCacheSize(n int) Option {
	return func(c *openConfig) { c.tileCacheSize = n }
}

// WithMetrics attaches Prometheus instrumentation to every range read,
// tile fetch, and cache access this GeoTIFF performs.
func WithMetrics(m *Metrics) Option {
	return func(c *openConfig) { c.metrics = m }
}

// WithPrefetch sets the size in bytes of Open's first speculative read.
func WithPrefetch(n int64) Option {
	return func(c *openConfig) { c.prefetchBytes = n }
}

// WithPrefetchMultiplier sets the growth factor Open applies to its
// speculative read size each time the IFD chain turns out to extend past
// the bytes already fetched.
func WithPrefetchMultiplier(m float64) Option {
	return func(c *openConfig) { c.prefetchMultiplier = m }
}

// Open reads and parses the GeoTIFF at path on rs, classifying its IFD
// chain into a primary image and overview pyramid. The CRS is not resolved
// here: it is resolved once, on the first CRS call. It performs a bounded, growing sequence of prefix
// reads rather than requesting the whole object up front: most COGs keep
// their entire IFD chain within the first prefetch, so Open typically
// issues a single range read.
func Open(ctx context.Context, rs store.RangeReader, path string, opts ...Option) (*GeoTIFF, error) {
	cfg := openConfig{
		tileCacheSize:      defaultTileCacheSize,
		prefetchBytes:      defaultPrefetchBytes,
		prefetchMultiplier: defaultPrefetchMultiplier,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prefetchMultiplier <= 1.0 {
		return nil, newError(KindOpen, fmt.Sprintf("prefetch multiplier must be > 1.0, got %v", cfg.prefetchMultiplier), nil)
	}

	dirs, err := parseIFDsWithGrowingPrefetch(ctx, rs, path, cfg)
	if err != nil {
		return nil, err
	}

	primary, overviews, err := classify(dirs)
	if err != nil {
		return nil, err
	}

	transform, err := transformFromTags(primary.dir)
	if err != nil {
		return nil, err
	}

	cache, err := newTileCache(cfg.tileCacheSize)
	if err != nil {
		return nil, newError(KindOpen, "failed to construct tile cache", err)
	}

	crsFn := sync.OnceValues(func() (*CRS, error) {
		keys, err := primary.dir.geoKeys()
		if err != nil {
			return nil, err
		}
		return ResolveCRS(keys)
	})

	g := &GeoTIFF{
		view: &view{
			rs:        rs,
			path:      path,
			dir:       primary.dir,
			maskDir:   primary.maskDir,
			transform: transform,
			crsFn:     crsFn,
			cache:     cache,
			dirIndex:  primary.dir.index,
			metrics:   cfg.metrics,
		},
	}

	for _, ov := range overviews {
		scaleX := float64(primary.dir.width()) / float64(ov.dir.width())
		scaleY := float64(primary.dir.height()) / float64(ov.dir.height())
		ovTransform := transform.Mul(ScaleAffine(scaleX, scaleY))
		g.overviews = append(g.overviews, &Overview{
			view: &view{
				rs:        rs,
				path:      path,
				dir:       ov.dir,
				maskDir:   ov.maskDir,
				transform: ovTransform,
				crsFn:     crsFn,
				cache:     cache,
				dirIndex:  ov.dir.index,
				metrics:   cfg.metrics,
			},
			parent: g,
		})
	}

	return g, nil
}

// parseIFDsWithGrowingPrefetch re-fetches the object's prefix with an
// exponentially growing size until github.com/google/tiff can parse the
// full IFD chain out of it, or the object itself is exhausted.
func parseIFDsWithGrowingPrefetch(ctx context.Context, rs store.RangeReader, path string, cfg openConfig) ([]*imageDirectory, error) {
	size := cfg.prefetchBytes
	var lastErr error

	for attempt := 0; attempt < maxPrefetchAttempts; attempt++ {
		buf, err := rs.ReadRange(ctx, path, 0, size)
		cfg.metrics.observeRangeRead(len(buf))
		if err != nil {
			return nil, newError(KindOpen, "failed to read GeoTIFF header", err)
		}

		t, err := tiff.Parse(bytes.NewReader(buf), tiff.GetTagSpace("GeoTIFF"), nil)
		if err == nil {
			dirs, decodeErr := decodeIFDs(t)
			if decodeErr == nil {
				return dirs, nil
			}
			lastErr = decodeErr
		} else {
			lastErr = err
		}

		if int64(len(buf)) < size {
			// The object is smaller than what we asked for, so growing the
			// prefetch further cannot help: this is a genuine parse failure.
			break
		}

		size = int64(float64(size) * cfg.prefetchMultiplier)
		slog.Debug("cogtiff: growing prefetch to cover full IFD chain", "path", path, "next_bytes", size, "attempt", attempt+1)
	}

	return nil, newError(KindOpen, fmt.Sprintf("%q is not a readable GeoTIFF", path), lastErr)
}
