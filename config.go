package backdrop

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Config controls a single transition. All fields are optional; the zero
// value of each field selects its documented default, so Config{} is a valid
// one-second cross-blend setup for any kind.
//
// Fields are shared across kinds; each kind reads only the fields listed in
// its comment and ignores the rest.
type Config struct {
	// Duration is the transition length in seconds. Zero defaults to 1.
	Duration float32
	// Delay is the startup delay in seconds before progress begins.
	Delay float32
	// Easing is the progress curve. Nil defaults to ease.InOutQuad.
	Easing ease.TweenFunc

	// Gradient is the soft-edge width for KindWipe in normalized screen
	// units. Zero gives a hard edge.
	Gradient float64
	// Angle is the wipe edge rotation for KindWipe, in degrees.
	Angle float64
	// Direction is the travel direction for KindWipe and KindSlide.
	// The zero value is DirRight.
	Direction Direction

	// Slides is the number of screen-widths the content travels for
	// KindSlide. Zero defaults to 1.
	Slides int
	// Intensity scales motion-blur strength for KindSlide and KindBlur.
	// Zero defaults to 1.
	Intensity float64
	// Samples is the motion-blur sample count for KindSlide and KindBlur.
	// Zero defaults to 32; values above 32 are clamped to 32.
	Samples int

	// Seed is the noise seed for KindGlitch. Zero picks a random seed
	// in [0, 1).
	Seed float64
}

// maxBlurSamples is the unrolled sample loop bound in the slide and blur
// shaders; Samples is clamped to it.
const maxBlurSamples = 32

// resolvedConfig is a Config with every default applied, ready for the
// orchestrator. Resolution happens exactly once per Transition call.
type resolvedConfig struct {
	duration  float32
	delay     float32
	easing    ease.TweenFunc
	gradient  float64
	angle     float64 // radians
	dirX      float32
	dirY      float32
	slides    int
	intensity float64
	samples   int
	seed      float64
}

const degToRad = 3.141592653589793 / 180

// resolveConfig applies per-kind defaults to cfg. Out-of-range values are
// clamped, never rejected.
func resolveConfig(kind Kind, cfg Config) resolvedConfig {
	rc := resolvedConfig{
		duration:  cfg.Duration,
		delay:     cfg.Delay,
		easing:    cfg.Easing,
		gradient:  cfg.Gradient,
		angle:     cfg.Angle * degToRad,
		slides:    cfg.Slides,
		intensity: cfg.Intensity,
		samples:   cfg.Samples,
		seed:      cfg.Seed,
	}
	if rc.duration <= 0 {
		rc.duration = 1
	}
	if rc.delay < 0 {
		rc.delay = 0
	}
	if rc.easing == nil {
		rc.easing = ease.InOutQuad
	}
	if rc.gradient < 0 {
		rc.gradient = 0
	}
	rc.dirX, rc.dirY = cfg.Direction.vec()
	if rc.slides <= 0 {
		rc.slides = 1
	}
	if rc.intensity <= 0 {
		rc.intensity = 1
	}
	if rc.samples <= 0 {
		rc.samples = maxBlurSamples
	}
	if rc.samples > maxBlurSamples {
		rc.samples = maxBlurSamples
	}
	if kind == KindGlitch && rc.seed == 0 {
		rc.seed = rand.Float64()
	}
	return rc
}
