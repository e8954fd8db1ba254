package framepack

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when a Frame names a pixel format that is
// not part of the closed set.
var ErrInvalidFormat = errors.New("framepack: invalid pixel format")

// Frame bundles the planar channels of one decoded frame together with the
// destination format they pack into, so pipeline code can carry frames of
// either format through one type. Only the plane group matching Format is
// consulted; the other is ignored.
type Frame struct {
	// Format selects the destination layout and which plane group is used.
	Format PixelFormat

	// Geometry is the frame geometry shared by all planes.
	Geometry Geometry

	// BGRA holds the source planes when Format is PixelFormatBGRA8.
	BGRA BGRAPlanes

	// RGB10 holds the source planes when Format is PixelFormatRGB10A2.
	RGB10 RGBPlanes10
}

// packBandFunc packs rows [y0, y1) of a frame into dst.
type packBandFunc func(f Frame, dst []byte, dstStride, y0, y1 int) error

// packers dispatches a frame to its format's pack operation. The format set
// is closed: adding a format means adding its operation here, under the
// same validate-then-write contract.
var packers = [pixelFormatCount]packBandFunc{
	PixelFormatBGRA8: func(f Frame, dst []byte, dstStride, y0, y1 int) error {
		return PackBGRA8Band(f.BGRA, f.Geometry, dst, dstStride, y0, y1)
	},
	PixelFormatRGB10A2: func(f Frame, dst []byte, dstStride, y0, y1 int) error {
		return PackRGB10A2Band(f.RGB10, f.Geometry, dst, dstStride, y0, y1)
	},
}

// Pack packs a whole frame into dst in the frame's format. It is a
// format-dispatching convenience over PackBGRA8 and PackRGB10A2 with the
// identical validation and concurrency contracts.
func Pack(f Frame, dst []byte, dstStride int) error {
	return PackBand(f, dst, dstStride, 0, f.Geometry.Height)
}

// PackBand packs rows [y0, y1) of a frame into dst; see PackBGRA8Band for
// the band contract.
func PackBand(f Frame, dst []byte, dstStride, y0, y1 int) error {
	if !f.Format.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidFormat, f.Format)
	}
	return packers[f.Format](f, dst, dstStride, y0, y1)
}
