// Package pipeline prefetches frames ahead of the playhead during playback.
//
// A Source produces planar frames by index (in a previewer this wraps the
// script evaluation and decode machinery, which stays outside this module).
// A Prefetch keeps a fixed number of frames in flight so that by the time
// the display loop asks for frame n, its planes are usually already
// rendered and only the pack remains.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/framepack"
)

// Pipeline errors.
var (
	// ErrExhausted is returned by Next when the play range has been fully
	// consumed and looping is disabled.
	ErrExhausted = errors.New("pipeline: play range exhausted")

	// ErrInvalidated is returned by Next after Invalidate has been called.
	ErrInvalidated = errors.New("pipeline: prefetch invalidated")

	// ErrInvalidRange is returned by Allocate for a malformed play range.
	ErrInvalidRange = errors.New("pipeline: invalid play range")
)

// Source supplies planar frames by index.
//
// Frame is called from prefetch goroutines, several indices at a time, so
// implementations must be safe for concurrent use. The returned frame's
// planes must stay valid until the frame has been consumed by the caller
// of Next.
type Source interface {
	Frame(ctx context.Context, n int) (framepack.Frame, error)
}

// PlayRange describes the frame indices of one playback run:
// Start, Start+Step, ... up to but excluding Stop.
type PlayRange struct {
	Start, Stop, Step int
}

func (r PlayRange) valid() bool {
	return r.Step > 0 && r.Stop >= r.Start
}

// request is one in-flight frame render.
type request struct {
	n     int
	done  chan struct{}
	frame framepack.Frame
	err   error
}

// Prefetch keeps a ring of in-flight frame requests ahead of the playhead.
//
// Allocate primes the ring for a play range; Next pops the oldest request,
// waits for it if needed, and tops the ring up with the next index.
// Invalidate cancels everything for seeks and teardown; the ring can then
// be Allocated again.
//
// Thread safety: all methods are safe for concurrent use, though playback
// normally drives Next from a single goroutine.
type Prefetch struct {
	src   Source
	depth int

	mu     sync.Mutex
	ring   []*request // oldest first
	rng    PlayRange
	next   int
	loop   bool
	active bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPrefetch creates a prefetcher over src keeping up to depth frames in
// flight. If depth is 0 or negative, a depth of 1 is used.
func NewPrefetch(src Source, depth int) *Prefetch {
	if depth < 1 {
		depth = 1
	}
	return &Prefetch{src: src, depth: depth}
}

// Depth returns the maximum number of in-flight frames.
func (p *Prefetch) Depth() int { return p.depth }

// Allocate primes the ring for a play range, issuing up to depth requests
// starting at rng.Start. When loop is true the range restarts from the
// beginning once exhausted. Any previous allocation is invalidated first.
func (p *Prefetch) Allocate(rng PlayRange, loop bool) error {
	if !rng.valid() {
		return ErrInvalidRange
	}

	p.Invalidate()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.rng = rng
	p.next = rng.Start
	p.loop = loop
	p.active = true
	p.ctx, p.cancel = context.WithCancel(context.Background())

	framepack.Logger().Debug("allocating prefetch ring",
		"start", rng.Start, "stop", rng.Stop, "step", rng.Step,
		"depth", p.depth, "loop", loop)

	for len(p.ring) < p.depth {
		if !p.requestNextLocked() {
			break
		}
	}
	return nil
}

// Next returns the next frame of the play range in order. It blocks until
// the frame's render completes or ctx is done, then issues a new request at
// the front of the ring.
//
// A failed render is reported with the frame index so the caller can drop
// that frame and keep playing; the ring keeps running.
func (p *Prefetch) Next(ctx context.Context) (int, framepack.Frame, error) {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return 0, framepack.Frame{}, ErrInvalidated
	}
	if len(p.ring) == 0 {
		p.mu.Unlock()
		return 0, framepack.Frame{}, ErrExhausted
	}

	req := p.ring[0]
	p.ring = p.ring[1:]
	p.requestNextLocked()
	p.mu.Unlock()

	select {
	case <-req.done:
	case <-ctx.Done():
		return req.n, framepack.Frame{}, ctx.Err()
	}

	if req.err != nil {
		framepack.Logger().Warn("frame render failed", "frame", req.n, "err", req.err)
		return req.n, framepack.Frame{}, req.err
	}
	return req.n, req.frame, nil
}

// Pending returns the number of frames currently in flight.
func (p *Prefetch) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ring)
}

// Invalidate cancels every in-flight request and clears the ring. Call it
// on seeks and on teardown; Allocate reactivates the prefetcher.
// Invalidate is safe to call multiple times.
func (p *Prefetch) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}

	p.active = false
	p.cancel()
	p.ring = nil

	framepack.Logger().Debug("prefetch ring cleared")
}

// requestNextLocked issues a request for the next index of the play range,
// wrapping around when looping. Returns false when the range is exhausted.
// Caller must hold p.mu.
func (p *Prefetch) requestNextLocked() bool {
	if p.next >= p.rng.Stop {
		if !p.loop {
			return false
		}
		p.next = p.rng.Start
		if p.next >= p.rng.Stop {
			return false
		}
	}

	req := &request{n: p.next, done: make(chan struct{})}
	p.next += p.rng.Step
	p.ring = append(p.ring, req)

	ctx := p.ctx
	go func() {
		req.frame, req.err = p.src.Frame(ctx, req.n)
		close(req.done)
	}()
	return true
}
