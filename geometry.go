package framepack

import (
	"errors"
	"fmt"
)

// Packing errors.
var (
	// ErrInvalidBuffer is returned when a source plane or the destination
	// buffer is too small for the declared geometry. The failed call has
	// written nothing; the caller must fix the buffers, not retry.
	ErrInvalidBuffer = errors.New("framepack: buffer too small for geometry")

	// ErrInvalidGeometry is returned when the geometry itself is malformed:
	// negative dimensions, a stride smaller than the width, or a row band
	// outside the frame.
	ErrInvalidGeometry = errors.New("framepack: invalid geometry")
)

// Geometry describes one rectangular frame: its size in pixels and the row
// stride, in samples, shared by every channel plane of the frame.
//
// The plane invariant: each required plane must hold at least
// Height*Stride samples. Geometry is validated against that invariant
// before any destination byte is written.
type Geometry struct {
	// Width is the frame width in pixels.
	Width int

	// Height is the frame height in pixels.
	Height int

	// Stride is the number of samples between the start of consecutive
	// rows in every source plane. Must be at least Width.
	Stride int
}

// Samples returns the minimum number of samples a plane must hold to
// satisfy the plane invariant for this geometry.
func (g Geometry) Samples() int {
	return g.Height * g.Stride
}

// validate checks the geometry's internal consistency.
func (g Geometry) validate() error {
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.Stride < g.Width {
		return fmt.Errorf("%w: stride %d smaller than width %d", ErrInvalidGeometry, g.Stride, g.Width)
	}
	return nil
}

// validateBand checks that [y0, y1) is a row band inside the frame.
func (g Geometry) validateBand(y0, y1 int) error {
	if y0 < 0 || y1 < y0 || y1 > g.Height {
		return fmt.Errorf("%w: row band [%d,%d) outside height %d", ErrInvalidGeometry, y0, y1, g.Height)
	}
	return nil
}

// checkPlane8 verifies the plane invariant for one required 8-bit plane.
func checkPlane8(name string, p []uint8, g Geometry) error {
	if len(p) < g.Samples() {
		return fmt.Errorf("%w: plane %s has %d samples, need %d", ErrInvalidBuffer, name, len(p), g.Samples())
	}
	return nil
}

// checkPlane16 verifies the plane invariant for one required 16-bit-stored plane.
func checkPlane16(name string, p []uint16, g Geometry) error {
	if len(p) < g.Samples() {
		return fmt.Errorf("%w: plane %s has %d samples, need %d", ErrInvalidBuffer, name, len(p), g.Samples())
	}
	return nil
}

// checkDst verifies the destination invariant: the stride fits a packed row
// and the capacity covers every addressed row.
func checkDst(dst []byte, dstStride int, g Geometry, f PixelFormat) error {
	if dstStride < f.RowBytes(g.Width) {
		return fmt.Errorf("%w: destination stride %d smaller than row of %d bytes",
			ErrInvalidGeometry, dstStride, f.RowBytes(g.Width))
	}
	if need := f.FrameBytes(g.Height, dstStride); len(dst) < need {
		return fmt.Errorf("%w: destination has %d bytes, need %d", ErrInvalidBuffer, len(dst), need)
	}
	return nil
}
