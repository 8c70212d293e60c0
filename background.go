package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// fieldExtent inflates the particle field 10% beyond the backdrop footprint
// on both axes so particles never pop in at the view edge.
const fieldExtent = 1.1

// Background is one renderable layered background: a backdrop image fitted
// to the view, a depth-bounded particle field in front of it, a drifting
// camera, and a post-effect chain. It owns one offscreen output target.
//
// Ownership is exclusive: a Background belongs to either the caller or a
// TransitionPass, never both, and is disposed exactly once by whoever holds
// it last.
type Background struct {
	// BackdropColor fills the view when no source image is set.
	BackdropColor Color

	source   *ebiten.Image
	target   *RenderTarget
	camera   *Camera
	field    *particleField
	chain    *EffectChain
	w, h     int
	aspect   float64
	disposed bool
	imgOp    ebiten.DrawImageOptions
}

// NewBackground creates a background of the given view size. source is the
// backdrop image and may be nil for a flat-color backdrop; the Background
// takes ownership of it and deallocates it on Dispose.
func NewBackground(source *ebiten.Image, w, h int) *Background {
	return NewBackgroundWithField(source, w, h, DefaultFieldConfig())
}

// NewBackgroundWithField creates a background with an explicit particle
// field configuration. A Count below zero disables the field.
func NewBackgroundWithField(source *ebiten.Image, w, h int, cfg FieldConfig) *Background {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	aspect := 1.0
	if source != nil {
		sb := source.Bounds()
		if sb.Dy() > 0 {
			aspect = float64(sb.Dx()) / float64(sb.Dy())
		}
	}
	b := &Background{
		BackdropColor: Color{R: 0.02, G: 0.02, B: 0.04, A: 1},
		source:        source,
		target:        NewRenderTarget(w, h),
		camera:        newCamera(),
		chain:         NewEffectChain(),
		w:             w,
		h:             h,
		aspect:        aspect,
	}
	b.field = newParticleField(cfg, b.fieldBounds(), b.camera.maxDepth(fieldExtent))
	return b
}

// Camera returns the background's camera for framing and drift control.
func (b *Background) Camera() *Camera {
	return b.camera
}

// Effects returns the background's post-effect chain.
func (b *Background) Effects() *EffectChain {
	return b.chain
}

// Aspect returns the backdrop's width/height ratio: the source image's
// aspect when one is set, otherwise 1. For unit backdrop width the surface
// height is 1/Aspect, preserving the source ratio.
func (b *Background) Aspect() float64 {
	return b.aspect
}

// Size returns the current view dimensions in pixels.
func (b *Background) Size() (w, h int) {
	return b.w, b.h
}

// IsDisposed reports whether Dispose has been called.
func (b *Background) IsDisposed() bool {
	return b.disposed
}

// fieldBounds returns the particle field extent: the view rectangle inflated
// by fieldExtent and centered on it.
func (b *Background) fieldBounds() Rect {
	w, h := float64(b.w), float64(b.h)
	return Rect{
		X:      -(fieldExtent - 1) * w / 2,
		Y:      -(fieldExtent - 1) * h / 2,
		Width:  fieldExtent * w,
		Height: fieldExtent * h,
	}
}

// coverSize returns the backdrop draw size for cover fit at the camera's
// zoom: the smallest scale at which the source fills the view completely.
func (b *Background) coverSize() (dw, dh float64) {
	z := b.camera.Zoom
	if z < 1 {
		z = 1
	}
	w, h := float64(b.w), float64(b.h)
	if b.source == nil {
		return w * z, h * z
	}
	sb := b.source.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	scale := w / sw
	if h/sh > scale {
		scale = h / sh
	}
	scale *= z
	return sw * scale, sh * scale
}

// Update advances the camera drift and particle simulation by one tick.
// Call exactly once per frame; a second call double-advances state.
func (b *Background) Update() {
	if b.disposed {
		if debugMode {
			panic("backdrop: Update on disposed Background")
		}
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))

	// Keep the drift range in sync with the live cover overscan so the
	// camera can never expose the backdrop edge.
	dw, dh := b.coverSize()
	b.camera.setDriftRange((dw-float64(b.w))/2, (dh-float64(b.h))/2)
	b.camera.update(dt)
	b.field.update(float64(dt))
}

// Draw renders the background into dst: backdrop and particles go to the
// internal target first, then composite into dst through the effect chain
// when one is active. dst must match the background's size; nil is a no-op.
func (b *Background) Draw(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	if b.disposed {
		if debugMode {
			panic("backdrop: Draw on disposed Background")
		}
		return
	}

	t := b.target.Image()
	if b.source == nil {
		b.target.Fill(b.BackdropColor)
	} else {
		dw, dh := b.coverSize()
		sb := b.source.Bounds()
		op := &b.imgOp
		op.GeoM.Reset()
		op.GeoM.Scale(dw/float64(sb.Dx()), dh/float64(sb.Dy()))
		op.GeoM.Translate(
			(float64(b.w)-dw)/2-b.camera.X,
			(float64(b.h)-dh)/2-b.camera.Y,
		)
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterLinear
		t.DrawImage(b.source, op)
	}

	b.field.draw(t, b.camera)

	if b.chain.HasEffects() {
		b.chain.Render(dst, t)
	} else {
		op := &b.imgOp
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(t, op)
	}
}

// SetSize resizes the internal target and rescales the particle field.
// Idempotent for repeated identical sizes.
func (b *Background) SetSize(w, h int) {
	if b.disposed {
		if debugMode {
			panic("backdrop: SetSize on disposed Background")
		}
		return
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == b.w && h == b.h {
		return
	}
	b.w, b.h = w, h
	b.target.Resize(w, h)
	b.field.setBounds(b.fieldBounds(), b.camera.maxDepth(fieldExtent))
}

// Dispose releases the output target, the source image, and all effect-chain
// resources. A second call is a guarded no-op (panics in debug mode).
func (b *Background) Dispose() {
	if b.disposed {
		if debugMode {
			panic("backdrop: double Dispose of Background")
		}
		return
	}
	b.disposed = true
	b.target.Dispose()
	b.chain.Dispose()
	if b.source != nil {
		b.source.Deallocate()
		b.source = nil
	}
}
