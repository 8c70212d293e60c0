package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader sources ---
// All shaders use //kage:unit pixels as required by Ebitengine.
// Transition shaders bind the incoming frame as imageSrc0 and the retained
// previous background as imageSrc1; both are opaque and screen-sized.

const blendShaderSrc = `//kage:unit pixels

package main

var MixRatio float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	curr := imageSrc0At(src)
	prev := imageSrc1At(src)
	return mix(prev, curr, MixRatio)
}
`

const wipeShaderSrc = `//kage:unit pixels

package main

var Amount float
var Aspect float
var Gradient float
var Angle float
var DirX float
var DirY float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size

	// Aspect-corrected position relative to screen center, projected onto
	// the rotated wipe direction.
	p := uv - vec2(0.5, 0.5)
	p.x *= Aspect
	ca := cos(Angle)
	sa := sin(Angle)
	d := vec2(DirX*ca-DirY*sa, DirX*sa+DirY*ca)
	t := dot(p, d)

	// The edge sweeps the full projected extent plus the gradient band so
	// both endpoints show a single image.
	half := 0.5*(abs(d.x)*Aspect+abs(d.y)) + Gradient + 0.0001
	edge := mix(-half, half, Amount)
	w := 1.0 - smoothstep(edge-Gradient-0.0001, edge+Gradient+0.0001, t)

	curr := imageSrc0At(src)
	prev := imageSrc1At(src)
	return mix(prev, curr, w)
}
`

const slideShaderSrc = `//kage:unit pixels

package main

var Slides float
var Intensity float
var Samples float
var DirX float
var DirY float
var PrevAmount float
var Amount float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size

	axis := vec2(abs(DirX), abs(DirY))
	perp := vec2(1.0, 1.0) - axis
	u := dot(uv, axis)
	if DirX+DirY < 0.0 {
		u = 1.0 - u
	}

	// Accumulate between the previous frame's amount and the current one;
	// Intensity widens or narrows the motion-blur window.
	sum := vec4(0.0)
	n := 0.0
	for i := 0; i < 32; i++ {
		if float(i) >= Samples {
			break
		}
		t := mix(PrevAmount, Amount, (float(i)+0.5)/Samples)
		a := mix(Amount, t, Intensity)
		s := u + a*Slides
		f := fract(s)
		if DirX+DirY < 0.0 {
			f = 1.0 - f
		}
		suv := uv*perp + axis*f
		pix := suv*size + origin
		if s >= Slides {
			sum += imageSrc0At(pix)
		} else {
			sum += imageSrc1At(pix)
		}
		n += 1.0
	}
	return sum / n
}
`

const blurShaderSrc = `//kage:unit pixels

package main

var Intensity float
var Samples float
var PrevAmount float
var Amount float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size
	center := vec2(0.5, 0.5)

	// Radial blur whose strength peaks at mid-transition, cross-fading the
	// two images along the way.
	sum := vec4(0.0)
	n := 0.0
	for i := 0; i < 32; i++ {
		if float(i) >= Samples {
			break
		}
		t := mix(PrevAmount, Amount, (float(i)+0.5)/Samples)
		k := t * (1.0 - t) * Intensity
		suv := mix(uv, center, k*(float(i)+0.5)/Samples)
		pix := suv*size + origin
		sum += mix(imageSrc1At(pix), imageSrc0At(pix), t)
		n += 1.0
	}
	return sum / n
}
`

const glitchShaderSrc = `//kage:unit pixels

package main

var Amount float
var Seed float
var Resolution vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size

	// Horizontal bands roughly 24 device pixels tall.
	rows := floor(Resolution.y/24.0) + 1.0
	band := floor(uv.y * rows)
	n1 := fract(sin(band*12.9898+Seed*78.233) * 43758.5453)
	n2 := fract(sin((band+rows)*4.898+Seed*7.23) * 23421.631)

	// Displacement is strongest at mid-transition.
	strength := Amount * (1.0 - Amount) * 4.0
	p := uv
	if n2 < strength {
		p.x = fract(p.x + (n1-0.5)*strength*0.2)
	}
	pix := p*size + origin

	// Chromatic fringe on displaced bands.
	d := vec2(strength*0.01, 0.0) * size
	curr := imageSrc0At(pix)
	cc := vec4(imageSrc0At(pix+d).r, curr.g, imageSrc0At(pix-d).b, curr.a)
	prev := imageSrc1At(pix)
	pp := vec4(imageSrc1At(pix+d).r, prev.g, imageSrc1At(pix-d).b, prev.a)

	// Per-band dissolve: bands flip to the incoming image in noise order.
	m := step(1.0-Amount, fract(n1+n2*0.37))
	return mix(pp, cc, m)
}
`

// --- Lazy shader compilation (no sync.Once — backdrop is single-threaded) ---

var (
	blendShader      *ebiten.Shader
	wipeShader       *ebiten.Shader
	slideShader      *ebiten.Shader
	blurShader       *ebiten.Shader
	glitchShader     *ebiten.Shader
	vignetteShader   *ebiten.Shader
	colorGradeShader *ebiten.Shader
)

func compileShader(name, src string) *ebiten.Shader {
	s, err := ebiten.NewShader([]byte(src))
	if err != nil {
		panic("backdrop: failed to compile " + name + " shader: " + err.Error())
	}
	return s
}

func ensureBlendShader() *ebiten.Shader {
	if blendShader == nil {
		blendShader = compileShader("blend", blendShaderSrc)
	}
	return blendShader
}

func ensureWipeShader() *ebiten.Shader {
	if wipeShader == nil {
		wipeShader = compileShader("wipe", wipeShaderSrc)
	}
	return wipeShader
}

func ensureSlideShader() *ebiten.Shader {
	if slideShader == nil {
		slideShader = compileShader("slide", slideShaderSrc)
	}
	return slideShader
}

func ensureBlurShader() *ebiten.Shader {
	if blurShader == nil {
		blurShader = compileShader("blur", blurShaderSrc)
	}
	return blurShader
}

func ensureGlitchShader() *ebiten.Shader {
	if glitchShader == nil {
		glitchShader = compileShader("glitch", glitchShaderSrc)
	}
	return glitchShader
}

func ensureVignetteShader() *ebiten.Shader {
	if vignetteShader == nil {
		vignetteShader = compileShader("vignette", vignetteShaderSrc)
	}
	return vignetteShader
}

func ensureColorGradeShader() *ebiten.Shader {
	if colorGradeShader == nil {
		colorGradeShader = compileShader("color grade", colorGradeShaderSrc)
	}
	return colorGradeShader
}
