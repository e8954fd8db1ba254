// Package framepack converts planar video frame data into interleaved
// display formats.
//
// # Overview
//
// framepack is the pixel packing layer of a frame previewer: a decoder hands
// it one buffer per color channel (planar layout), and a display surface
// hands it a writable region with a byte stride. framepack transcodes one
// rectangular frame per call, exactly reproducing the destination format's
// bit layout. It is designed to run once per displayed frame without
// becoming the bottleneck.
//
// # Quick Start
//
//	import "github.com/gogpu/framepack"
//
//	geo := framepack.Geometry{Width: w, Height: h, Stride: stride}
//	dst := make([]byte, h*dstStride)
//
//	err := framepack.PackBGRA8(framepack.BGRAPlanes{B: b, G: g, R: r}, geo, dst, dstStride)
//
// # Formats
//
//   - PixelFormatBGRA8: interleaved 8-bit B,G,R,A bytes with straight alpha.
//   - PixelFormatRGB10A2: packed 32-bit little-endian words with 10-bit
//     color channels and a 2-bit premultiplied alpha level.
//
// An absent alpha plane (nil slice) means fully opaque; it is a valid state,
// not an error.
//
// # Concurrency
//
// Every pack operation is a pure function over caller-supplied memory. No
// locks are held and no global state is touched, so concurrent calls are
// race-free as long as their destination row ranges are disjoint and no
// other goroutine mutates the source planes during a call. The Band entry
// points exist precisely so a worker pool can partition one frame into
// disjoint row bands; Parallel does that partitioning for you.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Geometry, BGRAPlanes, RGBPlanes10, PixelFormat, Pack*
//   - surface: destination targets (heap, image-backed, externally mapped)
//   - pipeline: playback prefetching ahead of the playhead
//   - Internal: parallel (worker pool, row bands)
package framepack

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
