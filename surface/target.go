// Package surface provides destination targets for packed frames.
//
// A Target is the packer's view of a display surface: a writable byte
// region with a row stride and a pixel format dictated by the surface
// owner. Targets never copy pixel data; the pack operations write into
// their storage directly.
//
// Three implementations cover the common previewer cases:
//   - BufferTarget: heap-allocated storage, any format.
//   - PixmapTarget: storage shared with an *image.RGBA, for BGRA8 frames.
//   - MappedTarget: externally owned memory, e.g. a mapped compositor
//     surface. This is the only place in the module that touches unsafe.
package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/framepack"
)

// Surface errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("surface: stride too small for width")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("surface: invalid pixel format")

	// ErrFormatMismatch is returned when a frame's format differs from the
	// target's.
	ErrFormatMismatch = errors.New("surface: frame format does not match target")

	// ErrSizeMismatch is returned when a frame's dimensions differ from the
	// target's.
	ErrSizeMismatch = errors.New("surface: frame size does not match target")

	// ErrNilPointer is returned when mapping a nil memory region.
	ErrNilPointer = errors.New("surface: nil pointer")

	// ErrRegionTooSmall is returned when a mapped region cannot hold every
	// addressed row.
	ErrRegionTooSmall = errors.New("surface: mapped region too small")
)

// Target is where packed frames go.
//
// The surface owner dictates the format and the stride; the packer's sole
// contract is to reproduce that format's byte layout exactly. The storage
// returned by Pixels is owned by the target (or by whoever handed it to the
// target) and stays valid until the target is discarded.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() framepack.PixelFormat

	// Pixels returns direct access to the target's storage.
	Pixels() []byte

	// Stride returns the number of bytes per row, which may include
	// padding beyond Width*BytesPerPixel.
	Stride() int
}

// PackFrame packs one frame into a target, validating that the frame and
// the target agree on format and size first. It is the usual way a
// previewer moves a decoded frame onto its surface.
func PackFrame(t Target, f framepack.Frame) error {
	if err := checkFrame(t, f); err != nil {
		return err
	}
	return framepack.Pack(f, t.Pixels(), t.Stride())
}

// PackFrameParallel packs one frame into a target using a resident
// parallel packer; see framepack.Parallel.
func PackFrameParallel(t Target, f framepack.Frame, p *framepack.Parallel) error {
	if err := checkFrame(t, f); err != nil {
		return err
	}
	return p.Pack(f, t.Pixels(), t.Stride())
}

func checkFrame(t Target, f framepack.Frame) error {
	if f.Format != t.Format() {
		return fmt.Errorf("%w: frame %s, target %s", ErrFormatMismatch, f.Format, t.Format())
	}
	if f.Geometry.Width != t.Width() || f.Geometry.Height != t.Height() {
		return fmt.Errorf("%w: frame %dx%d, target %dx%d", ErrSizeMismatch,
			f.Geometry.Width, f.Geometry.Height, t.Width(), t.Height())
	}
	return nil
}

// BufferTarget is a Target backed by heap-allocated storage. It is the
// default target when no surface memory is being shared.
type BufferTarget struct {
	width  int
	height int
	stride int
	format framepack.PixelFormat
	data   []byte
}

// NewBufferTarget allocates a target with the format's minimum stride.
func NewBufferTarget(width, height int, format framepack.PixelFormat) (*BufferTarget, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return NewBufferTargetWithStride(width, height, format, format.RowBytes(width))
}

// NewBufferTargetWithStride allocates a target with a custom byte stride
// for alignment. Stride must be at least format.RowBytes(width).
func NewBufferTargetWithStride(width, height int, format framepack.PixelFormat, stride int) (*BufferTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	return &BufferTarget{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		data:   make([]byte, format.FrameBytes(height, stride)),
	}, nil
}

// Width returns the target width in pixels.
func (t *BufferTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *BufferTarget) Height() int { return t.height }

// Format returns the pixel format of the target.
func (t *BufferTarget) Format() framepack.PixelFormat { return t.format }

// Pixels returns direct access to the target's storage.
func (t *BufferTarget) Pixels() []byte { return t.data }

// Stride returns the number of bytes per row.
func (t *BufferTarget) Stride() int { return t.stride }
