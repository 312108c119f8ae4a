package scene

import "math"

const FlareTexture = "https://playground.babylonjs.com/textures/flare.png"

// Profile holds the constants that differ between mobile and desktop
type Profile struct {
	CameraRadius  float64
	GlowIntensity float64
	ParticleCount int
	ParticleMinSz float64
	ParticleMaxSz float64
	ParticleRate  float64
}

var (
	MobileProfile = Profile{
		CameraRadius:  34,
		GlowIntensity: 0.55,
		ParticleCount: 900,
		ParticleMinSz: 0.08,
		ParticleMaxSz: 0.18,
		ParticleRate:  190,
	}

	DesktopProfile = Profile{
		CameraRadius:  30,
		GlowIntensity: 0.85,
		ParticleCount: 1700,
		ParticleMinSz: 0.1,
		ParticleMaxSz: 0.28,
		ParticleRate:  320,
	}
)

func ProfileFor(d Display) Profile {
	if d.IsMobile() {
		return MobileProfile
	}

	return DesktopProfile
}

// Build constructs the scene for the given display. Particles are created
// stopped; starting them is up to the session.
func Build(d Display) *Scene {
	p := ProfileFor(d)

	// Radius is clamped to itself and pointer input removed, so the user
	// can neither zoom nor pivot.
	camera := &Camera{
		Name:             "cam",
		Alpha:            math.Pi / 2,
		Beta:             math.Pi / 2.35,
		Radius:           p.CameraRadius,
		LowerRadiusLimit: p.CameraRadius,
		UpperRadiusLimit: p.CameraRadius,
		PointerInput:     false,
	}

	if v, ok := d.(Viewport); ok && v.Height > 0 {
		camera.Aspect = float64(v.Width) / float64(v.Height)
	}

	grid := &GridMaterial{
		Name:                "gridMat",
		MajorUnitFrequency:  6,
		MinorUnitVisibility: 0.4,
		GridRatio:           2.2,
		Opacity:             0.28,
		MainColor:           Color3{0, 0.9, 1},
		LineColor:           Color3{0, 0.45, 0.6},
	}

	ringMat := &Material{
		Name:     "ringMat",
		Emissive: Color3{0, 0.65, 0.85},
		Alpha:    0.75,
	}

	return &Scene{
		ClearColor: Color4{0, 0, 0, 0},
		Camera:     camera,
		Lights: []Light{
			{Name: "hemi", Kind: Hemispheric, Direction: Vector3{0, 1, 0}, Intensity: 0.6},
			{Name: "point", Kind: Point, Position: Vector3{0, 8, 0}, Intensity: 1.8},
		},
		Glow: GlowLayer{
			BlurKernelSize: 64,
			Intensity:      p.GlowIntensity,
		},
		Ground: &Mesh{
			Name:       "ground",
			Shape:      Ground,
			Dimensions: Dimensions{Width: 70, Height: 70},
			Position:   Vector3{0, -7.5, 0},
			Material:   grid.Name,
		},
		Grid: grid,
		Core: &Mesh{
			Name:       "core",
			Shape:      Sphere,
			Dimensions: Dimensions{Diameter: 4.2, Segments: 48},
			Material:   "coreMat",
		},
		CoreMaterial: &Material{
			Name:     "coreMat",
			Emissive: Color3{0, 0.85, 1},
			Alpha:    0.92,
		},
		Rings: [2]*Mesh{
			{
				Name:       "ring1",
				Shape:      Torus,
				Dimensions: Dimensions{Diameter: 7.2, Thickness: 0.1, Tessellation: 96},
				Position:   Vector3{0, 0.3, 0},
				Rotation:   Vector3{X: math.Pi / 2},
				Material:   ringMat.Name,
			},
			{
				Name:       "ring2",
				Shape:      Torus,
				Dimensions: Dimensions{Diameter: 9.4, Thickness: 0.08, Tessellation: 96},
				Rotation:   Vector3{X: math.Pi / 2.4, Y: math.Pi / 5},
				Material:   ringMat.Name,
			},
		},
		RingMaterial: ringMat,
		Particles: &ParticleSystem{
			Name:         "ps",
			Capacity:     p.ParticleCount,
			Texture:      FlareTexture,
			MinEmitBox:   Vector3{-12, -6, -12},
			MaxEmitBox:   Vector3{12, 6, 12},
			Color1:       Color4{0, 0.85, 1, 1},
			Color2:       Color4{0, 0.55, 1, 1},
			MinSize:      p.ParticleMinSz,
			MaxSize:      p.ParticleMaxSz,
			MinLifeTime:  2.3,
			MaxLifeTime:  4.3,
			EmitRate:     p.ParticleRate,
			BlendMode:    BlendAdd,
			Direction1:   Vector3{-0.6, -0.2, -0.6},
			Direction2:   Vector3{0.6, 0.5, 0.6},
			MinEmitPower: 0.4,
			MaxEmitPower: 1.1,
			UpdateSpeed:  0.01,
		},
	}
}
