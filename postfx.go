package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Effect is the interface for post-process effects applied to a Background's
// rendered output before compositing.
type Effect interface {
	// Apply renders src into dst with the effect.
	Apply(src, dst *ebiten.Image)
	// Dispose releases any GPU resources owned by the effect instance.
	// Shared, lazily compiled shaders are not owned and survive disposal.
	Dispose()
}

// EffectChain applies an ordered list of post effects, ping-ponging between
// pooled scratch images. A Background owns at most one chain.
type EffectChain struct {
	effects []Effect
	pool    scratchPool
	imgOp   ebiten.DrawImageOptions
}

// NewEffectChain creates a chain with the given effects in application order.
func NewEffectChain(effects ...Effect) *EffectChain {
	return &EffectChain{effects: effects}
}

// Add appends an effect to the end of the chain.
func (c *EffectChain) Add(e Effect) {
	c.effects = append(c.effects, e)
}

// HasEffects reports whether the chain will modify its input.
func (c *EffectChain) HasEffects() bool {
	return len(c.effects) > 0
}

// Render runs the chain on src and writes the final result into dst.
// With an empty chain, src is copied through unchanged.
func (c *EffectChain) Render(dst, src *ebiten.Image) {
	if len(c.effects) == 0 {
		c.imgOp.GeoM.Reset()
		dst.DrawImage(src, &c.imgOp)
		return
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// All but the last effect ping-pong through pooled scratch images; the
	// last writes straight into dst.
	current := src
	for i, e := range c.effects {
		if i == len(c.effects)-1 {
			e.Apply(current, dst)
		} else {
			next := c.pool.Acquire(w, h)
			e.Apply(current, next)
			if current != src {
				c.pool.Release(current)
			}
			current = next
		}
	}
	if current != src {
		c.pool.Release(current)
	}
}

// Dispose releases all effects and pooled scratch images.
func (c *EffectChain) Dispose() {
	for _, e := range c.effects {
		e.Dispose()
	}
	c.effects = nil
	c.pool.dispose()
}

// --- VignetteEffect ---

const vignetteShaderSrc = `//kage:unit pixels

package main

var Strength float
var Softness float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size
	d := distance(uv, vec2(0.5, 0.5)) * 1.4142135
	v := 1.0 - smoothstep(1.0-Softness, 1.0, d)*Strength
	return vec4(c.rgb*v, c.a)
}
`

// VignetteEffect darkens the frame towards its corners.
type VignetteEffect struct {
	// Strength is the darkening amount at the corners, in [0, 1].
	Strength float64
	// Softness is the width of the falloff band, in [0, 1].
	Softness float64
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewVignetteEffect creates a vignette with the given strength and a default
// falloff band.
func NewVignetteEffect(strength float64) *VignetteEffect {
	return &VignetteEffect{
		Strength: strength,
		Softness: 0.5,
		uniforms: make(map[string]any, 2),
	}
}

// Apply renders the vignette from src into dst.
func (e *VignetteEffect) Apply(src, dst *ebiten.Image) {
	shader := ensureVignetteShader()
	e.uniforms["Strength"] = float32(clamp01(e.Strength))
	e.uniforms["Softness"] = float32(clamp01(e.Softness))
	bounds := src.Bounds()
	e.shaderOp.Images[0] = src
	e.shaderOp.Uniforms = e.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &e.shaderOp)
}

// Dispose releases the effect's references. The shared shader survives.
func (e *VignetteEffect) Dispose() {
	e.shaderOp.Images[0] = nil
	e.uniforms = nil
}

// --- ColorGradeEffect ---

const colorGradeShaderSrc = `//kage:unit pixels

package main

var Tint vec3
var Saturation float
var Exposure float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	lum := 0.299*c.r + 0.587*c.g + 0.114*c.b
	rgb := mix(vec3(lum, lum, lum), c.rgb, Saturation)
	rgb *= Tint * Exposure
	rgb = clamp(rgb, 0.0, 1.0)
	return vec4(rgb*c.a, c.a)
}
`

// ColorGradeEffect applies a simple tint/saturation/exposure grade.
type ColorGradeEffect struct {
	// Tint multiplies each channel. White is neutral.
	Tint Color
	// Saturation is 1 for normal, 0 for grayscale.
	Saturation float64
	// Exposure multiplies the final brightness. 1 is neutral.
	Exposure float64
	uniforms map[string]any
	tintF32  [3]float32
	shaderOp ebiten.DrawRectShaderOptions
}

// NewColorGradeEffect creates a neutral color grade.
func NewColorGradeEffect() *ColorGradeEffect {
	e := &ColorGradeEffect{
		Tint:       ColorWhite,
		Saturation: 1,
		Exposure:   1,
		uniforms:   make(map[string]any, 3),
	}
	// Persistent slice header into tintF32 so Apply stays alloc-free.
	e.uniforms["Tint"] = e.tintF32[:]
	return e
}

// Apply renders the grade from src into dst.
func (e *ColorGradeEffect) Apply(src, dst *ebiten.Image) {
	shader := ensureColorGradeShader()
	e.tintF32[0] = float32(e.Tint.R)
	e.tintF32[1] = float32(e.Tint.G)
	e.tintF32[2] = float32(e.Tint.B)
	e.uniforms["Saturation"] = float32(e.Saturation)
	e.uniforms["Exposure"] = float32(e.Exposure)
	bounds := src.Bounds()
	e.shaderOp.Images[0] = src
	e.shaderOp.Uniforms = e.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &e.shaderOp)
}

// Dispose releases the effect's references. The shared shader survives.
func (e *ColorGradeEffect) Dispose() {
	e.shaderOp.Images[0] = nil
	e.uniforms = nil
}
