// Command scenesim runs the background scene headlessly and prints where
// everything ended up. Useful for checking breakpoint and reduced motion
// behavior without a browser.
package main

import (
	"bitwise74/visitor-api/internal/beacon"
	"bitwise74/visitor-api/internal/scene"
	"bitwise74/visitor-api/pkg/logger"
	"context"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	width         = pflag.Int("width", 1280, "Viewport width in CSS pixels")
	height        = pflag.Int("height", 720, "Viewport height in CSS pixels")
	reducedMotion = pflag.Bool("reduced-motion", false, "Simulate prefers-reduced-motion: reduce")
	frames        = pflag.Int("frames", 600, "Frames to step when not running in real time")
	fps           = pflag.Int("fps", 60, "Frames per second")
	realtime      = pflag.Duration("realtime", 0, "Run the render loop for this long instead of stepping frames")
	beaconURL     = pflag.String("beacon-url", "", "Base URL of the server to send a visitor beacon to")
	logLevel      = pflag.String("log-level", "info", "Log level")
)

func main() {
	pflag.Parse()

	if err := logger.Setup(*logLevel); err != nil {
		panic(err)
	}

	var b *beacon.Client
	var opts []scene.Option
	if *beaconURL != "" {
		b = beacon.New(*beaconURL)
		opts = append(opts, scene.WithBeacon(b))
	}

	s := scene.NewSession(scene.Viewport{
		Width:         *width,
		Height:        *height,
		ReducedMotion: *reducedMotion,
	}, opts...)

	p := scene.ProfileFor(scene.Viewport{Width: *width})
	zap.L().Info("Scene built",
		zap.String("state", s.State().String()),
		zap.Int("particles", p.ParticleCount),
		zap.Float64("camera_radius", s.Scene.Camera.Radius),
	)

	e := scene.NewHeadlessEngine(*fps)

	if *realtime > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), *realtime)
		defer cancel()

		if err := s.Start(ctx, e); err != nil {
			zap.L().Fatal("Render loop failed", zap.Error(err))
		}
	} else {
		if b != nil {
			b.Fire(context.Background())
		}

		e.RegisterBeforeRender(s.Advance)
		e.OnResize(s.Resize)

		dt := time.Second / time.Duration(*fps)
		for range *frames {
			e.Step(dt)
		}

		// Give the detached beacon a moment to report
		if b != nil {
			time.Sleep(time.Second)
		}
	}

	pose := s.Pose()
	zap.L().Info("Final pose",
		zap.Float64("elapsed", pose.Elapsed),
		zap.Float64("core_y", pose.CoreY),
		zap.Float64("core_spin", pose.CoreSpin),
		zap.Float64("inner_ring", pose.InnerRing),
		zap.Float64("outer_ring", pose.OuterRing),
		zap.Float64("grid_offset", pose.GridOffset),
	)
}
