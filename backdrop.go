package backdrop

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range, used by the particle field config.
type Range struct {
	Min, Max float64
}

// Kind selects the transition algorithm.
type Kind uint8

const (
	KindNone   Kind = iota // immediate cut, no mixing over time
	KindBlend              // linear cross-blend
	KindWipe               // directional edge wipe with optional soft gradient
	KindSlide              // directional slide with motion-blur accumulation
	KindBlur               // blur-dissolve with motion-blur accumulation
	KindGlitch             // seeded block-displacement glitch
)

// String returns the kind's name for debug output.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBlend:
		return "blend"
	case KindWipe:
		return "wipe"
	case KindSlide:
		return "slide"
	case KindBlur:
		return "blur"
	case KindGlitch:
		return "glitch"
	default:
		return "unknown"
	}
}

// Direction selects the travel direction for Wipe and Slide transitions.
type Direction uint8

const (
	DirRight Direction = iota // left to right (default)
	DirLeft                   // right to left
	DirUp                     // bottom to top
	DirDown                   // top to bottom
)

// vec returns the unit direction vector as float32 components for shader uniforms.
func (d Direction) vec() (x, y float32) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 1, 0
	}
}

// debugMode mirrors the most recently set debug flag so lifecycle misuse
// (operating on a disposed unit) panics loudly during development instead of
// silently no-opping.
var debugMode bool

// SetDebugMode enables or disables debug mode. When enabled, using a disposed
// Background or TransitionPass panics with a descriptive message.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
