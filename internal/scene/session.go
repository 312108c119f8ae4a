package scene

import (
	"context"
	"math"
	"time"
)

// Per-frame increments of the idle animation
const (
	BobFrequency    = 1.2
	BobAmplitude    = 0.35
	CoreSpin        = 0.002
	InnerRingSpin   = 0.0025
	OuterRingSpin   = -0.0018
	GridScrollSpeed = 0.003
)

type State int

const (
	Animating State = iota
	Frozen
)

func (s State) String() string {
	if s == Frozen {
		return "frozen"
	}

	return "animating"
}

// Beacon reports a page view. Fire must not block.
type Beacon interface {
	Fire(ctx context.Context)
}

type Option func(*Session)

func WithBeacon(b Beacon) Option {
	return func(s *Session) { s.beacon = b }
}

// Session owns one scene and its animation clock. Sessions share nothing,
// so any number of them can run side by side.
type Session struct {
	Scene *Scene

	state   State
	elapsed float64 // seconds
	frames  int
	beacon  Beacon
}

// NewSession builds the scene for d. The reduced motion preference is read
// once here; a frozen session never starts animating later.
func NewSession(d Display, opts ...Option) *Session {
	s := &Session{
		Scene: Build(d),
		state: Animating,
	}

	for _, o := range opts {
		o(s)
	}

	if d.PrefersReducedMotion() {
		s.state = Frozen
	} else {
		s.Scene.Particles.Start()
	}

	return s
}

func (s *Session) State() State { return s.state }

// Elapsed is the accumulated animation time in seconds
func (s *Session) Elapsed() float64 { return s.elapsed }

// Frames counts rendered frames
func (s *Session) Frames() int { return s.frames }

// Advance is the per-frame callback. Everything it touches is a pure
// function of the accumulated time and the number of frames seen.
func (s *Session) Advance(dt time.Duration) {
	if s.state == Frozen {
		return
	}

	s.elapsed += dt.Seconds()

	sc := s.Scene
	sc.Core.Position.Y = math.Sin(s.elapsed*BobFrequency) * BobAmplitude
	sc.Core.Rotation.Y += CoreSpin

	sc.Rings[0].Rotation.Z += InnerRingSpin
	sc.Rings[1].Rotation.Z += OuterRingSpin

	sc.Grid.GridOffset += GridScrollSpeed
}

// Resize recomputes the projection aspect for the new viewport size
func (s *Session) Resize(width, height int) {
	if height <= 0 {
		return
	}

	s.Scene.Camera.Aspect = float64(width) / float64(height)
}

// Start fires the beacon without waiting for it, hooks the session into e and
// renders until ctx is cancelled.
func (s *Session) Start(ctx context.Context, e Engine) error {
	if s.beacon != nil {
		s.beacon.Fire(ctx)
	}

	e.RegisterBeforeRender(s.Advance)
	e.OnResize(s.Resize)

	return e.RunRenderLoop(ctx, func() { s.frames++ })
}

type Pose struct {
	Elapsed    float64 `json:"elapsed"`
	CoreY      float64 `json:"coreY"`
	CoreSpin   float64 `json:"coreSpin"`
	InnerRing  float64 `json:"innerRing"`
	OuterRing  float64 `json:"outerRing"`
	GridOffset float64 `json:"gridOffset"`
}

func (s *Session) Pose() Pose {
	return Pose{
		Elapsed:    s.elapsed,
		CoreY:      s.Scene.Core.Position.Y,
		CoreSpin:   s.Scene.Core.Rotation.Y,
		InnerRing:  s.Scene.Rings[0].Rotation.Z,
		OuterRing:  s.Scene.Rings[1].Rotation.Z,
		GridOffset: s.Scene.Grid.GridOffset,
	}
}
