// Command cogcat reads a small pixel window out of a Cloud-Optimized
// GeoTIFF at a given longitude/latitude and prints the decoded sample
// values, exercising the cogtiff package end-to-end against a real
// object-store backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/twpayne/go-proj/v11"

	"github.com/developmentseed/go-cogtiff"
	"github.com/developmentseed/go-cogtiff/store"
)

func run(ctx context.Context) error {
	backend := flag.String("backend", "", "store backend: fs, http, or s3 (overrides COGCAT_BACKEND)")
	fsRoot := flag.String("fs-root", ".", "root directory for the fs backend")
	httpBase := flag.String("http-base", "", "base URL for the http backend")
	width := flag.Int("width", 1, "window width in pixels")
	height := flag.Int("height", 1, "window height in pixels")
	flag.Parse()

	if flag.NArg() != 3 {
		return errors.New("syntax: cogcat <path> <longitude> <latitude>")
	}
	path := flag.Arg(0)
	lon, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("invalid longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(flag.Arg(2), 64)
	if err != nil {
		return fmt.Errorf("invalid latitude: %w", err)
	}

	cfg := loadConfig()
	if *backend != "" {
		cfg.Backend = *backend
	}

	rs, err := openStore(cfg, *fsRoot, *httpBase)
	if err != nil {
		return err
	}

	g, err := cogtiff.Open(ctx, rs, path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}

	x, y, err := reprojectToImageCRS(g, lon, lat)
	if err != nil {
		return err
	}

	row, col := g.Index(x, y)
	window, err := cogtiff.NewWindow(col-*width/2, row-*height/2, *width, *height)
	if err != nil {
		return err
	}

	array, err := g.Read(ctx, window)
	if err != nil {
		return fmt.Errorf("reading window %s: %w", window, err)
	}

	for b, band := range array.Data {
		fmt.Printf("band %d:", b)
		for i := 0; i < band.Len(); i++ {
			fmt.Printf(" %g", band.Float64At(i))
		}
		fmt.Println()
	}
	return nil
}

// reprojectToImageCRS projects (lon, lat) in EPSG:4326 into g's CRS. This
// only supports EPSG-coded target CRSs: full reprojection support lives
// outside this package's core, and a user-defined PROJJSON target is out
// of scope for this example consumer.
func reprojectToImageCRS(g *cogtiff.GeoTIFF, lon, lat float64) (float64, float64, error) {
	crs, err := g.CRS()
	if err != nil {
		return 0, 0, fmt.Errorf("resolving CRS: %w", err)
	}
	if crs.EPSGCode == 0 {
		return 0, 0, errors.New("cogcat: image CRS is not EPSG-coded; cannot reproject a query point")
	}

	pj, err := proj.NewCRSToCRS("EPSG:4326", fmt.Sprintf("EPSG:%d", crs.EPSGCode), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("constructing reprojection: %w", err)
	}

	coords := [][]float64{{lat, lon}}
	if err := pj.ForwardFloat64Slices(coords); err != nil {
		return 0, 0, fmt.Errorf("reprojecting query point: %w", err)
	}
	return coords[0][0], coords[0][1], nil
}

func openStore(cfg *config, fsRoot, httpBase string) (store.RangeReader, error) {
	switch cfg.Backend {
	case "fs", "":
		return store.NewFS(os.DirFS(fsRoot)), nil
	case "http":
		if httpBase == "" {
			return nil, errors.New("cogcat: -http-base is required for backend=http")
		}
		return store.NewHTTP(httpBase, http.DefaultClient), nil
	case "s3":
		if err := cfg.validateS3(); err != nil {
			return nil, err
		}
		return store.NewS3(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Secure)
	default:
		return nil, fmt.Errorf("cogcat: unknown backend %q", cfg.Backend)
	}
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
