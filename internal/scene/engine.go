package scene

import (
	"context"
	"sync"
	"time"
)

// Engine is the rendering capability a session runs on
type Engine interface {
	RegisterBeforeRender(fn func(dt time.Duration))
	OnResize(fn func(width, height int))
	Resize(width, height int)
	RunRenderLoop(ctx context.Context, render func()) error
}

// HeadlessEngine drives frames from a ticker without drawing anything. Resize
// requests are applied on the loop goroutine before the next frame, the same
// way a browser delivers resize events between frames.
type HeadlessEngine struct {
	FPS int

	mu      sync.Mutex
	before  []func(time.Duration)
	resize  []func(int, int)
	pending *[2]int
}

func NewHeadlessEngine(fps int) *HeadlessEngine {
	if fps <= 0 {
		fps = 60
	}

	return &HeadlessEngine{FPS: fps}
}

func (e *HeadlessEngine) RegisterBeforeRender(fn func(time.Duration)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.before = append(e.before, fn)
}

func (e *HeadlessEngine) OnResize(fn func(int, int)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resize = append(e.resize, fn)
}

func (e *HeadlessEngine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = &[2]int{width, height}
}

// Step runs a single frame's callbacks with the given delta
func (e *HeadlessEngine) Step(dt time.Duration) {
	e.mu.Lock()
	before := append([]func(time.Duration){}, e.before...)
	resize := append([]func(int, int){}, e.resize...)
	size := e.pending
	e.pending = nil
	e.mu.Unlock()

	if size != nil {
		for _, fn := range resize {
			fn(size[0], size[1])
		}
	}

	for _, fn := range before {
		fn(dt)
	}
}

// RunRenderLoop renders until ctx is done. Cancellation is the normal way
// out and is not reported as an error.
func (e *HeadlessEngine) RunRenderLoop(ctx context.Context, render func()) error {
	ticker := time.NewTicker(time.Second / time.Duration(e.FPS))
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			e.Step(now.Sub(last))
			last = now

			if render != nil {
				render()
			}
		}
	}
}
