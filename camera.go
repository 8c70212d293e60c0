package backdrop

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// driftAnim holds the active drift tweens for camera X and Y.
type driftAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera frames a Background: a pixel offset from centered framing plus a
// zoom factor. When drift is enabled the camera wanders slowly between
// random framings inside its drift range, giving static images a subtle
// parallax motion against the particle field.
type Camera struct {
	// X and Y offset the framing from center, in pixels at depth zero.
	X, Y float64
	// Zoom scales the backdrop beyond cover fit. Values below 1 would
	// expose the backdrop edge and are clamped at draw time.
	Zoom float64
	// DriftEnabled turns the idle wander on or off.
	DriftEnabled bool
	// DriftPeriod is the range of seconds one drift leg takes.
	DriftPeriod Range

	rangeX, rangeY float64
	drift          *driftAnim
	idle           float32
}

// newCamera creates a camera with a mild default zoom and drift enabled.
func newCamera() *Camera {
	return &Camera{
		Zoom:         1.05,
		DriftEnabled: true,
		DriftPeriod:  Range{Min: 5, Max: 9},
	}
}

// ScrollTo animates the camera offset to (x, y) over duration seconds,
// replacing any drift leg in progress.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.drift = &driftAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// setDriftRange bounds the camera offset so the backdrop keeps covering the
// view, and clamps the current offset into the new range.
func (c *Camera) setDriftRange(rx, ry float64) {
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	c.rangeX, c.rangeY = rx, ry
	c.X = clampAbs(c.X, rx)
	c.Y = clampAbs(c.Y, ry)
}

// update advances the drift animation by dt seconds.
func (c *Camera) update(dt float32) {
	if c.drift != nil {
		if !c.drift.doneX {
			val, done := c.drift.tweenX.Update(dt)
			c.X = float64(val)
			c.drift.doneX = done
		}
		if !c.drift.doneY {
			val, done := c.drift.tweenY.Update(dt)
			c.Y = float64(val)
			c.drift.doneY = done
		}
		if c.drift.doneX && c.drift.doneY {
			c.drift = nil
			c.idle = float32(Range{Min: 0.5, Max: 2}.Random())
		}
		return
	}

	if !c.DriftEnabled || (c.rangeX == 0 && c.rangeY == 0) {
		return
	}
	c.idle -= dt
	if c.idle > 0 {
		return
	}
	tx := (rand.Float64()*2 - 1) * c.rangeX
	ty := (rand.Float64()*2 - 1) * c.rangeY
	c.ScrollTo(tx, ty, float32(c.DriftPeriod.Random()), ease.InOutQuad)
}

// maxDepth returns the deepest particle depth at which a backdrop inflated
// by extent (1.1 = 10% overscan) still exactly fills the view: parallax
// shrinks apparent extent by 1/(1+depth), so depth tops out where the
// inflated, zoomed footprint shrinks back to exactly 1.
func (c *Camera) maxDepth(extent float64) float64 {
	z := c.Zoom
	if z < 1 {
		z = 1
	}
	d := extent*z - 1
	if d < 0 {
		return 0
	}
	return d
}

// parallax returns the apparent scale of content at the given depth.
func parallax(depth float64) float64 {
	return 1 / (1 + depth)
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
