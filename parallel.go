package framepack

import (
	"fmt"

	"github.com/gogpu/framepack/internal/parallel"
)

// Parallel packs frames by partitioning their rows into disjoint bands and
// packing the bands concurrently on a resident worker pool. Because the
// pack operations hold no lock, the bands proceed on independent hardware
// threads with no synchronization beyond the final join.
//
// A Parallel is intended to live for the whole playback session and be
// handed every frame; the workers stay parked between frames. Output is
// byte-identical to the serial pack of the same inputs.
//
// Thread safety: distinct frames may be packed from distinct goroutines
// concurrently as long as their destination buffers do not overlap.
type Parallel struct {
	pool *parallel.Pool
}

// NewParallel creates a parallel packer with the specified worker count.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewParallel(workers int) *Parallel {
	return &Parallel{pool: parallel.NewPool(workers)}
}

// Workers returns the number of workers in the pool.
func (p *Parallel) Workers() int { return p.pool.Workers() }

// Close releases the worker pool. After Close, pack calls still succeed but
// run on the calling goroutine.
func (p *Parallel) Close() { p.pool.Close() }

// PackBGRA8 packs a whole frame like the package-level PackBGRA8, splitting
// the rows across the pool. Validation runs once, up front, on the calling
// goroutine: a contract violation is returned before any worker starts and
// before any byte is written.
func (p *Parallel) PackBGRA8(src BGRAPlanes, geo Geometry, dst []byte, dstStride int) error {
	if err := geo.validate(); err != nil {
		return err
	}
	if err := src.validate(geo); err != nil {
		return err
	}
	if err := checkDst(dst, dstStride, geo, PixelFormatBGRA8); err != nil {
		return err
	}

	bands := parallel.Bands(geo.Height, p.pool.Workers())
	if len(bands) <= 1 {
		packBGRA8Rows(src, geo, dst, dstStride, 0, geo.Height)
		return nil
	}

	work := make([]func(), len(bands))
	for i, band := range bands {
		bnd := band
		work[i] = func() {
			packBGRA8Rows(src, geo, dst, dstStride, bnd.Y0, bnd.Y1)
		}
	}
	p.pool.ExecuteAll(work)
	return nil
}

// PackRGB10A2 packs a whole frame like the package-level PackRGB10A2,
// splitting the rows across the pool. The validation contract matches
// PackBGRA8.
func (p *Parallel) PackRGB10A2(src RGBPlanes10, geo Geometry, dst []byte, dstStride int) error {
	if err := geo.validate(); err != nil {
		return err
	}
	if err := src.validate(geo); err != nil {
		return err
	}
	if err := checkDst(dst, dstStride, geo, PixelFormatRGB10A2); err != nil {
		return err
	}

	bands := parallel.Bands(geo.Height, p.pool.Workers())
	if len(bands) <= 1 {
		packRGB10A2Rows(src, geo, dst, dstStride, 0, geo.Height)
		return nil
	}

	work := make([]func(), len(bands))
	for i, band := range bands {
		bnd := band
		work[i] = func() {
			packRGB10A2Rows(src, geo, dst, dstStride, bnd.Y0, bnd.Y1)
		}
	}
	p.pool.ExecuteAll(work)
	return nil
}

// Pack packs a Frame in its format, dispatching like the package-level Pack.
func (p *Parallel) Pack(f Frame, dst []byte, dstStride int) error {
	switch f.Format {
	case PixelFormatBGRA8:
		return p.PackBGRA8(f.BGRA, f.Geometry, dst, dstStride)
	case PixelFormatRGB10A2:
		return p.PackRGB10A2(f.RGB10, f.Geometry, dst, dstStride)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidFormat, f.Format)
	}
}
