package surface

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/framepack"
)

// TextureFormat converts a framepack pixel format to the wgpu texture
// format with the identical byte layout, so a GPU-backed presenter can
// create a texture that packed frames upload into verbatim.
//
// Returns TextureFormatUndefined for unknown formats.
func TextureFormat(f framepack.PixelFormat) gputypes.TextureFormat {
	switch f {
	case framepack.PixelFormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case framepack.PixelFormatRGB10A2:
		return gputypes.TextureFormatRGB10A2Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
