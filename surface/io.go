package surface

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/gogpu/framepack"
)

// Snapshot returns a copy of any target's contents as a well-formed RGBA
// image, decoding the target's packed layout. For RGB10A2 targets the
// 10-bit channels are reduced to 8 bits and the 2-bit alpha level is
// expanded across the alpha byte; the premultiplication is left in place.
func Snapshot(t Target) (*image.RGBA, error) {
	w, h := t.Width(), t.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	pix := t.Pixels()
	stride := t.Stride()

	switch t.Format() {
	case framepack.PixelFormatBGRA8:
		for y := 0; y < h; y++ {
			src := pix[y*stride : y*stride+w*4]
			dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
			copy(dst, src)
			swizzleBGRA(dst)
		}

	case framepack.PixelFormatRGB10A2:
		for y := 0; y < h; y++ {
			src := pix[y*stride : y*stride+w*4]
			dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
			for x := 0; x < w; x++ {
				word := binary.LittleEndian.Uint32(src[x*4:])
				o := x * 4
				dst[o+0] = uint8(word >> 20 & 0x3FF >> 2)
				dst[o+1] = uint8(word >> 10 & 0x3FF >> 2)
				dst[o+2] = uint8(word & 0x3FF >> 2)
				dst[o+3] = uint8(word>>30) * 85
			}
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, t.Format())
	}

	return img, nil
}

// SavePNG saves a snapshot of the target to a PNG file.
func SavePNG(t Target, path string) error {
	img, err := Snapshot(t)
	if err != nil {
		return err
	}
	return saveImage(path, img, png.Encode)
}

// SaveBMP saves a snapshot of the target to a BMP file. BMP discards the
// alpha channel.
func SaveBMP(t Target, path string) error {
	img, err := Snapshot(t)
	if err != nil {
		return err
	}
	return saveImage(path, img, bmp.Encode)
}

func saveImage(path string, img *image.RGBA, encode func(w io.Writer, m image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f, img)
}
