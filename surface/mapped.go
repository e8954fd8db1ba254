package surface

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/framepack"
)

// MappedTarget is a Target over externally owned raw memory, typically a
// mapped region of a window- or GPU-backed surface crossing a language
// boundary.
//
// NewMappedTarget is the module's single unchecked-pointer entry point:
// every argument is validated against the region size before the byte view
// is constructed, and no other package performs pointer arithmetic. Callers
// own the region and must keep it mapped for the lifetime of the target;
// the target never frees it.
type MappedTarget struct {
	width  int
	height int
	stride int
	format framepack.PixelFormat
	data   []byte
}

// NewMappedTarget wraps size bytes at ptr as a pack destination.
//
// The region must hold at least height*stride bytes and stride must fit a
// packed row, so that every write a pack operation performs lands inside
// the region. Violations are reported here, before any byte view exists.
func NewMappedTarget(ptr unsafe.Pointer, size int, width, height int, format framepack.PixelFormat, stride int) (*MappedTarget, error) {
	if ptr == nil {
		return nil, ErrNilPointer
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	if need := format.FrameBytes(height, stride); size < need {
		return nil, fmt.Errorf("%w: %d bytes mapped, need %d", ErrRegionTooSmall, size, need)
	}

	return &MappedTarget{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		data:   unsafe.Slice((*byte)(ptr), size),
	}, nil
}

// Width returns the target width in pixels.
func (t *MappedTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *MappedTarget) Height() int { return t.height }

// Format returns the pixel format of the target.
func (t *MappedTarget) Format() framepack.PixelFormat { return t.format }

// Pixels returns the mapped byte view.
func (t *MappedTarget) Pixels() []byte { return t.data }

// Stride returns the number of bytes per row.
func (t *MappedTarget) Stride() int { return t.stride }
