package framepack

import "encoding/binary"

// PackBGRA8 packs planar 8-bit channels into interleaved BGRA bytes with
// straight alpha: for each pixel the 4-byte sequence (B, G, R, A) is written
// at dst[y*dstStride+x*4], where A comes from the alpha plane or is 255 when
// the plane is absent. Color channels are written unscaled; compositing is
// the consumer's job.
//
// Validation runs as a dedicated pass before any write: on failure the call
// returns ErrInvalidBuffer (or ErrInvalidGeometry) and dst is untouched.
// On success exactly Height*Width*4 bytes are written across the addressed
// rows and nothing else.
//
// PackBGRA8 holds no lock and allocates nothing; see the package
// documentation for the concurrent-use contract.
func PackBGRA8(src BGRAPlanes, geo Geometry, dst []byte, dstStride int) error {
	return PackBGRA8Band(src, geo, dst, dstStride, 0, geo.Height)
}

// PackBGRA8Band packs only the rows [y0, y1) of the frame, addressing the
// same destination offsets those rows have in a full pack. Callers that
// partition a frame across workers give each worker a disjoint band; the
// bands may then be packed concurrently without synchronization.
//
// The full declared geometry is validated, not just the band, so every
// worker packing the same frame fails identically or not at all.
func PackBGRA8Band(src BGRAPlanes, geo Geometry, dst []byte, dstStride, y0, y1 int) error {
	if err := geo.validate(); err != nil {
		return err
	}
	if err := geo.validateBand(y0, y1); err != nil {
		return err
	}
	if err := src.validate(geo); err != nil {
		return err
	}
	if err := checkDst(dst, dstStride, geo, PixelFormatBGRA8); err != nil {
		return err
	}
	packBGRA8Rows(src, geo, dst, dstStride, y0, y1)
	return nil
}

// packBGRA8Rows is the unvalidated inner loop. Callers must have verified
// the plane and destination invariants; every index below is in bounds.
func packBGRA8Rows(src BGRAPlanes, geo Geometry, dst []byte, dstStride, y0, y1 int) {
	width := geo.Width
	for y := y0; y < y1; y++ {
		si := y * geo.Stride
		b := src.B[si : si+width]
		g := src.G[si : si+width]
		r := src.R[si : si+width]
		row := dst[y*dstStride : y*dstStride+width*4]

		if src.A != nil {
			a := src.A[si : si+width]
			for x := 0; x < width; x++ {
				o := x * 4
				row[o+0] = b[x]
				row[o+1] = g[x]
				row[o+2] = r[x]
				row[o+3] = a[x]
			}
		} else {
			for x := 0; x < width; x++ {
				o := x * 4
				row[o+0] = b[x]
				row[o+1] = g[x]
				row[o+2] = r[x]
				row[o+3] = 0xFF
			}
		}
	}
}

// PackRGB10A2 packs planar 10-bit channels into one 32-bit little-endian
// word per pixel with layout [31:30]=alpha level, [29:20]=red,
// [19:10]=green, [9:0]=blue, written at dst[y*dstStride+x*4].
//
// Alpha is quantized to a 2-bit level L = a>>8 and the color channels are
// premultiplied by it with exact integer arithmetic (division truncates):
//
//	L = 0: channel = 0 (fully transparent collapses to black)
//	L = 1: channel = v/3
//	L = 2: channel = v*2/3
//	L = 3: channel = v
//
// When the alpha plane is absent the pixel is fully opaque: the level field
// is 0b11 and the channels are unscaled, numerically identical to L = 3.
//
// Channel and alpha samples must be in [0, 1023]; values outside that range
// produce undefined words (but never an out-of-bounds access).
//
// The validation and concurrency contracts are identical to PackBGRA8.
func PackRGB10A2(src RGBPlanes10, geo Geometry, dst []byte, dstStride int) error {
	return PackRGB10A2Band(src, geo, dst, dstStride, 0, geo.Height)
}

// PackRGB10A2Band packs only the rows [y0, y1) of the frame; see
// PackBGRA8Band for the band contract.
func PackRGB10A2Band(src RGBPlanes10, geo Geometry, dst []byte, dstStride, y0, y1 int) error {
	if err := geo.validate(); err != nil {
		return err
	}
	if err := geo.validateBand(y0, y1); err != nil {
		return err
	}
	if err := src.validate(geo); err != nil {
		return err
	}
	if err := checkDst(dst, dstStride, geo, PixelFormatRGB10A2); err != nil {
		return err
	}
	packRGB10A2Rows(src, geo, dst, dstStride, y0, y1)
	return nil
}

// opaqueLevel is the 2-bit alpha field for a fully opaque pixel.
const opaqueLevel = uint32(0b11) << 30

// packRGB10A2Rows is the unvalidated inner loop. Callers must have verified
// the plane and destination invariants.
func packRGB10A2Rows(src RGBPlanes10, geo Geometry, dst []byte, dstStride, y0, y1 int) {
	width := geo.Width
	for y := y0; y < y1; y++ {
		si := y * geo.Stride
		r := src.R[si : si+width]
		g := src.G[si : si+width]
		b := src.B[si : si+width]
		row := dst[y*dstStride : y*dstStride+width*4]

		if src.A != nil {
			a := src.A[si : si+width]
			for x := 0; x < width; x++ {
				rv := uint32(r[x])
				gv := uint32(g[x])
				bv := uint32(b[x])

				level := uint32(a[x]) >> 8
				switch level {
				case 0:
					rv, gv, bv = 0, 0, 0
				case 1:
					rv, gv, bv = rv/3, gv/3, bv/3
				case 2:
					rv, gv, bv = rv*2/3, gv*2/3, bv*2/3
				}

				binary.LittleEndian.PutUint32(row[x*4:], level<<30|rv<<20|gv<<10|bv)
			}
		} else {
			for x := 0; x < width; x++ {
				word := opaqueLevel | uint32(r[x])<<20 | uint32(g[x])<<10 | uint32(b[x])
				binary.LittleEndian.PutUint32(row[x*4:], word)
			}
		}
	}
}
