package backdrop

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// fieldParticle holds per-particle state. Positions are in view pixels
// relative to the field's bounds; depth pushes a particle behind the view
// plane for parallax.
type fieldParticle struct {
	x, y   float64
	vx, vy float64
	depth  float64
	size   float64
	alpha  float64
	phase  float64
}

// FieldConfig controls the Background's ambient particle field.
type FieldConfig struct {
	// Count is the number of particles in the field. Zero defaults to 160.
	// Negative disables the field.
	Count int
	// Speed is the drift speed range in pixels per second at depth zero.
	Speed Range
	// Angle is the drift direction range in radians.
	Angle Range
	// Size is the particle diameter range in pixels at depth zero.
	Size Range
	// Alpha is the base opacity range.
	Alpha Range
	// Color is the particle tint.
	Color Color
	// Twinkle is the alpha oscillation rate in cycles per second.
	Twinkle float64
}

// DefaultFieldConfig returns the dust-mote preset used when a Background is
// created without an explicit field configuration.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:   160,
		Speed:   Range{Min: 4, Max: 18},
		Angle:   Range{Min: 0, Max: 2 * math.Pi},
		Size:    Range{Min: 2, Max: 5},
		Alpha:   Range{Min: 0.15, Max: 0.55},
		Color:   ColorWhite,
		Twinkle: 0.25,
	}
}

// particleField is a fixed population of drifting, wrapping particles spread
// over the field bounds and through [0, depthBound] in depth. Unlike an
// emitter there is no spawning or death: the field is fully populated at
// creation and particles wrap at the bounds edge.
type particleField struct {
	cfg        FieldConfig
	particles  []fieldParticle
	bounds     Rect
	depthBound float64
	elapsed    float64
	imgOp      ebiten.DrawImageOptions
}

// newParticleField creates a field populated across bounds with depths in
// [0, depthBound].
func newParticleField(cfg FieldConfig, bounds Rect, depthBound float64) *particleField {
	if cfg.Count == 0 {
		cfg.Count = 160
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	f := &particleField{
		cfg:        cfg,
		particles:  make([]fieldParticle, cfg.Count),
		bounds:     bounds,
		depthBound: depthBound,
	}
	for i := range f.particles {
		f.respawn(&f.particles[i])
	}
	return f
}

// respawn places a particle at a uniformly random position in the field.
func (f *particleField) respawn(p *fieldParticle) {
	p.x = f.bounds.X + rand.Float64()*f.bounds.Width
	p.y = f.bounds.Y + rand.Float64()*f.bounds.Height
	p.depth = rand.Float64() * f.depthBound
	angle := f.cfg.Angle.Random()
	speed := f.cfg.Speed.Random()
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed
	p.size = f.cfg.Size.Random()
	p.alpha = f.cfg.Alpha.Random()
	p.phase = rand.Float64() * 2 * math.Pi
}

// update advances the drift simulation by dt seconds.
func (f *particleField) update(dt float64) {
	f.elapsed += dt
	b := f.bounds
	for i := range f.particles {
		p := &f.particles[i]
		p.x += p.vx * dt
		p.y += p.vy * dt

		// Wrap at the field edge so the population stays constant.
		if p.x < b.X {
			p.x += b.Width
		} else if p.x >= b.X+b.Width {
			p.x -= b.Width
		}
		if p.y < b.Y {
			p.y += b.Height
		} else if p.y >= b.Y+b.Height {
			p.y -= b.Height
		}
	}
}

// setBounds rescales the field into new bounds and clamps depths to the new
// bound. Particle positions keep their relative placement so a resize does
// not visibly reshuffle the field.
func (f *particleField) setBounds(bounds Rect, depthBound float64) {
	old := f.bounds
	f.bounds = bounds
	f.depthBound = depthBound
	sx, sy := 1.0, 1.0
	if old.Width > 0 {
		sx = bounds.Width / old.Width
	}
	if old.Height > 0 {
		sy = bounds.Height / old.Height
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.x = bounds.X + (p.x-old.X)*sx
		p.y = bounds.Y + (p.y-old.Y)*sy
		if p.depth > depthBound {
			p.depth = depthBound
		}
	}
}

// draw renders the field into dst with per-particle parallax against the
// camera offset. Deeper particles move less, render smaller, and dim.
func (f *particleField) draw(dst *ebiten.Image, cam *Camera) {
	if len(f.particles) == 0 {
		return
	}
	dot := ensureParticleDot()
	db := dot.Bounds()
	dotSize := float64(db.Dx())
	op := &f.imgOp

	for i := range f.particles {
		p := &f.particles[i]
		k := parallax(p.depth)
		x := p.x - cam.X*k
		y := p.y - cam.Y*k
		scale := p.size * k / dotSize

		alpha := p.alpha * k
		if f.cfg.Twinkle > 0 {
			alpha *= 0.75 + 0.25*math.Sin(f.elapsed*2*math.Pi*f.cfg.Twinkle+p.phase)
		}

		op.GeoM.Reset()
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x-p.size*k/2, y-p.size*k/2)
		op.ColorScale.Reset()
		c := f.cfg.Color
		op.ColorScale.Scale(
			float32(c.R*c.A*alpha),
			float32(c.G*c.A*alpha),
			float32(c.B*c.A*alpha),
			float32(c.A*alpha),
		)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(dot, op)
	}
}

// --- Shared dot texture ---

const particleDotSize = 16

var particleDot *ebiten.Image

// ensureParticleDot lazily builds the shared soft radial dot all fields draw
// with. Never deallocated; it is process-shared like the compiled shaders.
func ensureParticleDot() *ebiten.Image {
	if particleDot != nil {
		return particleDot
	}
	const s = particleDotSize
	pix := make([]byte, s*s*4)
	half := float64(s-1) / 2
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			dx := (float64(x) - half) / half
			dy := (float64(y) - half) / half
			d := math.Sqrt(dx*dx + dy*dy)
			v := clamp01(1 - d)
			// Squared falloff reads as a soft glow rather than a disc.
			a := byte(v*v*255 + 0.5)
			off := (y*s + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	particleDot = ebiten.NewImage(s, s)
	particleDot.WritePixels(pix)
	return particleDot
}
