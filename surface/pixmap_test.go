package surface

import (
	"image"
	"testing"

	"github.com/gogpu/framepack"
)

func TestPixmapTarget_PackAndSnapshot(t *testing.T) {
	pt, err := NewPixmapTarget(2, 1)
	if err != nil {
		t.Fatalf("NewPixmapTarget() = %v", err)
	}

	f := framepack.Frame{
		Format:   framepack.PixelFormatBGRA8,
		Geometry: framepack.Geometry{Width: 2, Height: 1, Stride: 2},
		BGRA: framepack.BGRAPlanes{
			B: []uint8{10, 40},
			G: []uint8{20, 50},
			R: []uint8{30, 60},
			A: []uint8{200, 100},
		},
	}

	if err := PackFrame(pt, f); err != nil {
		t.Fatalf("PackFrame() = %v", err)
	}

	// Raw storage holds BGRA byte order.
	raw := pt.Image().Pix
	if raw[0] != 10 || raw[1] != 20 || raw[2] != 30 || raw[3] != 200 {
		t.Errorf("raw pixel 0 = %v, want BGRA [10 20 30 200]", raw[:4])
	}

	// Snapshot swizzles back to true RGBA.
	snap := pt.Snapshot()
	if got := snap.RGBAAt(0, 0); got.R != 30 || got.G != 20 || got.B != 10 || got.A != 200 {
		t.Errorf("snapshot pixel (0,0) = %+v", got)
	}
	if got := snap.RGBAAt(1, 0); got.R != 60 || got.G != 50 || got.B != 40 || got.A != 100 {
		t.Errorf("snapshot pixel (1,0) = %+v", got)
	}

	// Snapshot must be a copy.
	snap.Pix[0] = 0xEE
	if raw[0] == 0xEE {
		t.Error("Snapshot() shares storage with the target")
	}
}

func TestNewPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	pt, err := NewPixmapTargetFromImage(img)
	if err != nil {
		t.Fatalf("NewPixmapTargetFromImage() = %v", err)
	}

	if &pt.Pixels()[0] != &img.Pix[0] {
		t.Error("target does not share the image's storage")
	}
	if pt.Stride() != img.Stride {
		t.Errorf("Stride() = %d, want %d", pt.Stride(), img.Stride)
	}
}

func TestNewPixmapTarget_InvalidDimensions(t *testing.T) {
	if _, err := NewPixmapTarget(0, 4); err == nil {
		t.Error("NewPixmapTarget(0, 4) succeeded, want error")
	}
	if _, err := NewPixmapTargetFromImage(image.NewRGBA(image.Rectangle{})); err == nil {
		t.Error("empty image accepted, want error")
	}
}

func TestSwizzleBGRA_SelfInverse(t *testing.T) {
	p := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	want := append([]byte(nil), p...)

	swizzleBGRA(p)
	if p[0] != 3 || p[2] != 1 || p[4] != 7 || p[6] != 5 {
		t.Errorf("swizzled = %v", p)
	}

	swizzleBGRA(p)
	for i := range p {
		if p[i] != want[i] {
			t.Fatalf("double swizzle changed byte %d", i)
		}
	}
}
