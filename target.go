package backdrop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTarget is a persistent offscreen canvas owned by exactly one holder:
// either a Background (its output target) or a TransitionPass (its
// intermediate buffer). It is never pooled or recycled between frames.
type RenderTarget struct {
	image *ebiten.Image
	w, h  int
}

// NewRenderTarget creates a persistent offscreen canvas of the given size.
func NewRenderTarget(w, h int) *RenderTarget {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &RenderTarget{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct drawing.
func (rt *RenderTarget) Image() *ebiten.Image {
	return rt.image
}

// Width returns the target width in pixels.
func (rt *RenderTarget) Width() int {
	return rt.w
}

// Height returns the target height in pixels.
func (rt *RenderTarget) Height() int {
	return rt.h
}

// Clear fills the target with transparent black.
func (rt *RenderTarget) Clear() {
	rt.image.Clear()
}

// Fill fills the entire target with the given color.
func (rt *RenderTarget) Fill(c Color) {
	rt.image.Fill(c.toRGBA())
}

// Resize reallocates the target at the new dimensions. Idempotent for
// repeated identical sizes: the existing image is kept untouched.
func (rt *RenderTarget) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == rt.w && height == rt.h {
		return
	}
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(width, height)
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image. Safe to call more than once;
// the target must not be drawn to afterwards.
func (rt *RenderTarget) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}
