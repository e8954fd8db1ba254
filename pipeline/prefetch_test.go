package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/framepack"
)

// fakeSource renders tiny single-pixel frames whose blue value is the frame
// index, so tests can verify ordering end to end.
type fakeSource struct {
	calls atomic.Int64
	delay time.Duration
	fail  map[int]bool
}

func (s *fakeSource) Frame(ctx context.Context, n int) (framepack.Frame, error) {
	s.calls.Add(1)

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return framepack.Frame{}, ctx.Err()
		}
	}
	if s.fail[n] {
		return framepack.Frame{}, fmt.Errorf("render of frame %d failed", n)
	}

	return framepack.Frame{
		Format:   framepack.PixelFormatBGRA8,
		Geometry: framepack.Geometry{Width: 1, Height: 1, Stride: 1},
		BGRA: framepack.BGRAPlanes{
			B: []uint8{uint8(n)},
			G: []uint8{0},
			R: []uint8{0},
		},
	}, nil
}

func TestPrefetch_InOrder(t *testing.T) {
	src := &fakeSource{}
	p := NewPrefetch(src, 3)

	if err := p.Allocate(PlayRange{Start: 0, Stop: 5, Step: 1}, false); err != nil {
		t.Fatalf("Allocate() = %v", err)
	}
	defer p.Invalidate()

	for want := 0; want < 5; want++ {
		n, frame, err := p.Next(context.Background())
		if err != nil {
			t.Fatalf("Next() = %v", err)
		}
		if n != want {
			t.Fatalf("Next() index = %d, want %d", n, want)
		}
		if frame.BGRA.B[0] != uint8(want) {
			t.Errorf("frame %d carries wrong plane data", n)
		}
	}

	if _, _, err := p.Next(context.Background()); !errors.Is(err, ErrExhausted) {
		t.Errorf("err after range = %v, want ErrExhausted", err)
	}
}

func TestPrefetch_Step(t *testing.T) {
	src := &fakeSource{}
	p := NewPrefetch(src, 2)

	if err := p.Allocate(PlayRange{Start: 10, Stop: 16, Step: 2}, false); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	var got []int
	for {
		n, _, err := p.Next(context.Background())
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, n)
	}

	want := []int{10, 12, 14}
	if len(got) != len(want) {
		t.Fatalf("frames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}
}

func TestPrefetch_Loop(t *testing.T) {
	src := &fakeSource{}
	p := NewPrefetch(src, 2)

	if err := p.Allocate(PlayRange{Start: 0, Stop: 2, Step: 1}, true); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	want := []int{0, 1, 0, 1, 0}
	for i, w := range want {
		n, _, err := p.Next(context.Background())
		if err != nil {
			t.Fatalf("Next() #%d = %v", i, err)
		}
		if n != w {
			t.Fatalf("Next() #%d index = %d, want %d", i, n, w)
		}
	}
}

func TestPrefetch_FailedFrameReportsAndContinues(t *testing.T) {
	src := &fakeSource{fail: map[int]bool{1: true}}
	p := NewPrefetch(src, 2)

	if err := p.Allocate(PlayRange{Start: 0, Stop: 3, Step: 1}, false); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	if n, _, err := p.Next(context.Background()); err != nil || n != 0 {
		t.Fatalf("frame 0: n=%d err=%v", n, err)
	}

	// Frame 1 fails; the error names the frame and playback keeps going.
	n, _, err := p.Next(context.Background())
	if err == nil {
		t.Fatal("frame 1 should fail")
	}
	if n != 1 {
		t.Errorf("failed frame index = %d, want 1", n)
	}

	if n, _, err := p.Next(context.Background()); err != nil || n != 2 {
		t.Fatalf("frame 2: n=%d err=%v", n, err)
	}
}

func TestPrefetch_Invalidate(t *testing.T) {
	src := &fakeSource{delay: 10 * time.Millisecond}
	p := NewPrefetch(src, 4)

	if err := p.Allocate(PlayRange{Start: 0, Stop: 100, Step: 1}, false); err != nil {
		t.Fatal(err)
	}

	p.Invalidate()

	if _, _, err := p.Next(context.Background()); !errors.Is(err, ErrInvalidated) {
		t.Errorf("err = %v, want ErrInvalidated", err)
	}
	if p.Pending() != 0 {
		t.Errorf("Pending() = %d after Invalidate, want 0", p.Pending())
	}

	// Invalidate is idempotent and the ring can be reused.
	p.Invalidate()
	if err := p.Allocate(PlayRange{Start: 5, Stop: 7, Step: 1}, false); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	if n, _, err := p.Next(context.Background()); err != nil || n != 5 {
		t.Fatalf("after realloc: n=%d err=%v", n, err)
	}
}

func TestPrefetch_DepthLimitsInFlight(t *testing.T) {
	src := &fakeSource{delay: 5 * time.Millisecond}
	p := NewPrefetch(src, 2)

	if err := p.Allocate(PlayRange{Start: 0, Stop: 50, Step: 1}, false); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	if got := p.Pending(); got != 2 {
		t.Errorf("Pending() right after Allocate = %d, want 2", got)
	}
}

func TestPrefetch_ContextCancel(t *testing.T) {
	src := &fakeSource{delay: time.Minute}
	p := NewPrefetch(src, 1)

	if err := p.Allocate(PlayRange{Start: 0, Stop: 10, Step: 1}, false); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, _, err := p.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestPrefetch_InvalidRange(t *testing.T) {
	p := NewPrefetch(&fakeSource{}, 2)

	tests := []struct {
		name string
		rng  PlayRange
	}{
		{"zero step", PlayRange{Start: 0, Stop: 5, Step: 0}},
		{"negative step", PlayRange{Start: 0, Stop: 5, Step: -1}},
		{"stop before start", PlayRange{Start: 5, Stop: 0, Step: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Allocate(tt.rng, false); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestPrefetch_EmptyRange(t *testing.T) {
	p := NewPrefetch(&fakeSource{}, 2)

	if err := p.Allocate(PlayRange{Start: 3, Stop: 3, Step: 1}, false); err != nil {
		t.Fatal(err)
	}
	defer p.Invalidate()

	if _, _, err := p.Next(context.Background()); !errors.Is(err, ErrExhausted) {
		t.Errorf("err = %v, want ErrExhausted", err)
	}
}
