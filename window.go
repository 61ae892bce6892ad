package cogtiff

import "fmt"

// A Window is a rectangular, axis-aligned subset of a raster expressed in
// pixel coordinates.
type Window struct {
	ColOff int
	RowOff int
	Width  int
	Height int
}

// NewWindow constructs a Window, validating offsets and dimensions.
func NewWindow(colOff, rowOff, width, height int) (Window, error) {
	w := Window{ColOff: colOff, RowOff: rowOff, Width: width, Height: height}
	if colOff < 0 || rowOff < 0 {
		return Window{}, newError(KindWindow, fmt.Sprintf(
			"window start indices must be non-negative, got col_off=%d, row_off=%d", colOff, rowOff), nil)
	}
	if width <= 0 {
		return Window{}, newError(KindWindow, fmt.Sprintf("window width must be positive, got %d", width), nil)
	}
	if height <= 0 {
		return Window{}, newError(KindWindow, fmt.Sprintf("window height must be positive, got %d", height), nil)
	}
	return w, nil
}

func (w Window) String() string {
	return fmt.Sprintf("Window(col_off=%d, row_off=%d, width=%d, height=%d)", w.ColOff, w.RowOff, w.Width, w.Height)
}

// Intersection returns the overlapping region between w and other. It fails
// if the windows do not overlap.
func (w Window) Intersection(other Window) (Window, error) {
	colOff := max(w.ColOff, other.ColOff)
	rowOff := max(w.RowOff, other.RowOff)
	colStop := min(w.ColOff+w.Width, other.ColOff+other.Width)
	rowStop := min(w.RowOff+w.Height, other.RowOff+other.Height)

	width := colStop - colOff
	height := rowStop - rowOff
	if width <= 0 || height <= 0 {
		return Window{}, newError(KindWindow, fmt.Sprintf("windows do not intersect: %s and %s", w, other), nil)
	}
	return Window{ColOff: colOff, RowOff: rowOff, Width: width, Height: height}, nil
}
