package scene

// MobileBreakpoint is the widest viewport, in CSS pixels, that still gets the
// mobile presentation constants
const MobileBreakpoint = 768

// Display answers the media queries the scene depends on
type Display interface {
	PrefersReducedMotion() bool
	IsMobile() bool
}

type Viewport struct {
	Width         int
	Height        int
	ReducedMotion bool
}

func (v Viewport) PrefersReducedMotion() bool { return v.ReducedMotion }

func (v Viewport) IsMobile() bool { return v.Width <= MobileBreakpoint }
