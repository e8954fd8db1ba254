package framepack

// BGRAPlanes groups the planar 8-bit channels of one frame destined for
// PixelFormatBGRA8 packing.
//
// B, G and R are required. A is optional: a nil slice means the frame has
// no alpha plane and every pixel is fully opaque (alpha byte 255). The
// planes are read-only views owned by the frame producer; framepack never
// copies or retains them past the call.
type BGRAPlanes struct {
	B []uint8
	G []uint8
	R []uint8
	A []uint8
}

// HasAlpha reports whether an alpha plane is present.
func (p BGRAPlanes) HasAlpha() bool { return p.A != nil }

// validate checks the plane invariant for every present plane.
func (p BGRAPlanes) validate(g Geometry) error {
	if err := checkPlane8("b", p.B, g); err != nil {
		return err
	}
	if err := checkPlane8("g", p.G, g); err != nil {
		return err
	}
	if err := checkPlane8("r", p.R, g); err != nil {
		return err
	}
	if p.A != nil {
		return checkPlane8("a", p.A, g)
	}
	return nil
}

// RGBPlanes10 groups the planar 10-bit-significant channels of one frame
// destined for PixelFormatRGB10A2 packing. Samples are stored in 16-bit
// words; values must be in [0, 1023].
//
// R, G and B are required. A is optional: a nil slice means fully opaque
// (alpha level 3, color channels unscaled).
type RGBPlanes10 struct {
	R []uint16
	G []uint16
	B []uint16
	A []uint16
}

// HasAlpha reports whether an alpha plane is present.
func (p RGBPlanes10) HasAlpha() bool { return p.A != nil }

// validate checks the plane invariant for every present plane.
func (p RGBPlanes10) validate(g Geometry) error {
	if err := checkPlane16("r", p.R, g); err != nil {
		return err
	}
	if err := checkPlane16("g", p.G, g); err != nil {
		return err
	}
	if err := checkPlane16("b", p.B, g); err != nil {
		return err
	}
	if p.A != nil {
		return checkPlane16("a", p.A, g)
	}
	return nil
}
