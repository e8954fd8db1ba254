package surface

import (
	"image"

	"github.com/gogpu/framepack"
)

// PixmapTarget is a Target that shares storage with an *image.RGBA, for
// previewers that hand frames to toolkits expecting a Go image.
//
// The target's format is PixelFormatBGRA8, so after packing the image's Pix
// holds B, G, R, A byte order rather than Go's R, G, B, A. Image exposes
// that raw view for consumers that want BGRA (most window systems);
// Snapshot returns a swizzled copy with true RGBA order for consumers that
// want a well-formed Go image.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a BGRA8 target backed by a freshly allocated
// image of the given size.
func NewPixmapTarget(width, height int) (*PixmapTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &PixmapTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a target.
// The image's storage is used directly without copying; packing overwrites
// it with BGRA-ordered bytes. The image must have a zero-origin bounds.
func NewPixmapTargetFromImage(img *image.RGBA) (*PixmapTarget, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &PixmapTarget{img: img}, nil
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int { return t.img.Bounds().Dy() }

// Format returns PixelFormatBGRA8.
func (t *PixmapTarget) Format() framepack.PixelFormat { return framepack.PixelFormatBGRA8 }

// Pixels returns the image's raw storage.
func (t *PixmapTarget) Pixels() []byte { return t.img.Pix }

// Stride returns the image's byte stride.
func (t *PixmapTarget) Stride() int { return t.img.Stride }

// Image returns the backing image without copying. After packing, its Pix
// holds BGRA byte order; use Snapshot for a true RGBA copy.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }

// Snapshot returns a copy of the target contents as a well-formed RGBA
// image, swizzling each pixel's B and R bytes.
func (t *PixmapTarget) Snapshot() *image.RGBA {
	img := image.NewRGBA(t.img.Bounds())
	copy(img.Pix, t.img.Pix)
	swizzleBGRA(img.Pix)
	return img
}

// swizzleBGRA converts a pixel buffer between BGRA and RGBA byte orders in
// place. The conversion is its own inverse.
func swizzleBGRA(p []byte) {
	for i := 0; i+3 < len(p); i += 4 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
	}
}
