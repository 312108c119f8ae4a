// Package scene models the animated background shown behind the landing
// page: what gets built, with which constants, and how it moves every frame.
//
// Rendering is left to an Engine implementation. The package only owns the
// scene graph values and the deterministic idle animation applied to them.
package scene

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Color3 struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type Color4 struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Camera orbits Target. Alpha and Beta are the azimuth and elevation.
type Camera struct {
	Name             string  `json:"name"`
	Alpha            float64 `json:"alpha"`
	Beta             float64 `json:"beta"`
	Radius           float64 `json:"radius"`
	LowerRadiusLimit float64 `json:"lowerRadiusLimit"`
	UpperRadiusLimit float64 `json:"upperRadiusLimit"`
	PointerInput     bool    `json:"pointerInput"`
	Target           Vector3 `json:"target"`
	Aspect           float64 `json:"aspect"`
}

type LightKind string

const (
	Hemispheric LightKind = "hemispheric"
	Point       LightKind = "point"
)

type Light struct {
	Name      string    `json:"name"`
	Kind      LightKind `json:"kind"`
	Direction Vector3   `json:"direction,omitzero"`
	Position  Vector3   `json:"position,omitzero"`
	Intensity float64   `json:"intensity"`
}

type GlowLayer struct {
	BlurKernelSize int     `json:"blurKernelSize"`
	Intensity      float64 `json:"intensity"`
}

type Material struct {
	Name     string  `json:"name"`
	Emissive Color3  `json:"emissive"`
	Alpha    float64 `json:"alpha"`
}

type GridMaterial struct {
	Name                string  `json:"name"`
	MajorUnitFrequency  int     `json:"majorUnitFrequency"`
	MinorUnitVisibility float64 `json:"minorUnitVisibility"`
	GridRatio           float64 `json:"gridRatio"`
	Opacity             float64 `json:"opacity"`
	MainColor           Color3  `json:"mainColor"`
	LineColor           Color3  `json:"lineColor"`
	GridOffset          float64 `json:"gridOffset"`
}

type Shape string

const (
	Ground Shape = "ground"
	Sphere Shape = "sphere"
	Torus  Shape = "torus"
)

type Dimensions struct {
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Diameter     float64 `json:"diameter,omitempty"`
	Thickness    float64 `json:"thickness,omitempty"`
	Segments     int     `json:"segments,omitempty"`
	Tessellation int     `json:"tessellation,omitempty"`
}

type Mesh struct {
	Name       string     `json:"name"`
	Shape      Shape      `json:"shape"`
	Dimensions Dimensions `json:"dimensions"`
	Position   Vector3    `json:"position"`
	Rotation   Vector3    `json:"rotation"`
	Material   string     `json:"material"`
}

type BlendMode string

const BlendAdd BlendMode = "add"

type ParticleSystem struct {
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	Texture      string    `json:"texture"`
	Emitter      Vector3   `json:"emitter"`
	MinEmitBox   Vector3   `json:"minEmitBox"`
	MaxEmitBox   Vector3   `json:"maxEmitBox"`
	Color1       Color4    `json:"color1"`
	Color2       Color4    `json:"color2"`
	MinSize      float64   `json:"minSize"`
	MaxSize      float64   `json:"maxSize"`
	MinLifeTime  float64   `json:"minLifeTime"`
	MaxLifeTime  float64   `json:"maxLifeTime"`
	EmitRate     float64   `json:"emitRate"`
	BlendMode    BlendMode `json:"blendMode"`
	Gravity      Vector3   `json:"gravity"`
	Direction1   Vector3   `json:"direction1"`
	Direction2   Vector3   `json:"direction2"`
	MinEmitPower float64   `json:"minEmitPower"`
	MaxEmitPower float64   `json:"maxEmitPower"`
	UpdateSpeed  float64   `json:"updateSpeed"`
	Started      bool      `json:"started"`
}

func (p *ParticleSystem) Start() { p.Started = true }

// Scene is everything owned by one page session
type Scene struct {
	ClearColor   Color4          `json:"clearColor"`
	Camera       *Camera         `json:"camera"`
	Lights       []Light         `json:"lights"`
	Glow         GlowLayer       `json:"glow"`
	Ground       *Mesh           `json:"ground"`
	Grid         *GridMaterial   `json:"grid"`
	Core         *Mesh           `json:"core"`
	CoreMaterial *Material       `json:"coreMaterial"`
	Rings        [2]*Mesh        `json:"rings"`
	RingMaterial *Material       `json:"ringMaterial"`
	Particles    *ParticleSystem `json:"particles"`
}
