package framepack

// PixelFormat represents a destination pixel layout.
//
// The set is closed: each format has a dedicated pack operation that
// reproduces its byte layout exactly, and new formats are added here
// together with their operation under the same contract shape.
type PixelFormat uint8

const (
	// PixelFormatBGRA8 is interleaved 8-bit B, G, R, A bytes per pixel
	// with straight (non-premultiplied) alpha.
	PixelFormatBGRA8 PixelFormat = iota

	// PixelFormatRGB10A2 is one packed 32-bit little-endian word per pixel:
	// bits [31:30] hold a 2-bit alpha level, [29:20] red, [19:10] green,
	// [9:0] blue. Color channels are premultiplied by the alpha level.
	PixelFormatRGB10A2

	// pixelFormatCount is the number of formats (for internal use).
	pixelFormatCount
)

// PixelFormatInfo contains metadata about a pixel format.
type PixelFormatInfo struct {
	// BytesPerPixel is the number of destination bytes per pixel.
	BytesPerPixel int

	// BitsPerChannel is the number of significant bits per color channel.
	BitsPerChannel int

	// AlphaBits is the number of alpha bits in the destination layout.
	AlphaBits int

	// Premultiplied indicates if color channels are scaled by alpha.
	Premultiplied bool
}

// pixelFormatInfoTable contains metadata for each format.
var pixelFormatInfoTable = [pixelFormatCount]PixelFormatInfo{
	PixelFormatBGRA8: {
		BytesPerPixel:  4,
		BitsPerChannel: 8,
		AlphaBits:      8,
		Premultiplied:  false,
	},
	PixelFormatRGB10A2: {
		BytesPerPixel:  4,
		BitsPerChannel: 10,
		AlphaBits:      2,
		Premultiplied:  true,
	},
}

// Info returns the PixelFormatInfo for this format.
func (f PixelFormat) Info() PixelFormatInfo {
	if f >= pixelFormatCount {
		return PixelFormatInfo{}
	}
	return pixelFormatInfoTable[f]
}

// BytesPerPixel returns the number of destination bytes per pixel.
func (f PixelFormat) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// BitsPerChannel returns the number of significant bits per color channel.
func (f PixelFormat) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// Premultiplied returns true if color channels are scaled by alpha.
func (f PixelFormat) Premultiplied() bool {
	return f.Info().Premultiplied
}

// IsValid returns true if the format is a valid known format.
func (f PixelFormat) IsValid() bool {
	return f < pixelFormatCount
}

// RowBytes calculates the minimum destination bytes for a row of the
// given width. An actual destination stride may be larger for alignment.
func (f PixelFormat) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// FrameBytes calculates the minimum destination bytes for a full frame
// packed with the given stride.
func (f PixelFormat) FrameBytes(height, stride int) int {
	return height * stride
}

// String returns a string representation of the format.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatBGRA8:
		return "BGRA8"
	case PixelFormatRGB10A2:
		return "RGB10A2"
	default:
		return "Unknown"
	}
}
