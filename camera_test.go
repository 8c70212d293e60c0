package backdrop

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraMaxDepth(t *testing.T) {
	c := newCamera()
	c.Zoom = 1

	got := c.maxDepth(1.1)
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("maxDepth(1.1) at zoom 1 = %v, want 0.1", got)
	}

	c.Zoom = 0.5
	if got := c.maxDepth(1.1); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("zoom below 1 clamps to 1: maxDepth = %v, want 0.1", got)
	}

	// Extent that never covers the view pins the field to the view plane.
	c.Zoom = 1
	if got := c.maxDepth(0.9); got != 0 {
		t.Errorf("maxDepth(0.9) = %v, want 0", got)
	}
}

func TestParallaxScale(t *testing.T) {
	if parallax(0) != 1 {
		t.Errorf("parallax(0) = %v, want 1", parallax(0))
	}
	if parallax(1) != 0.5 {
		t.Errorf("parallax(1) = %v, want 0.5", parallax(1))
	}
}

func TestCameraScrollToReachesTarget(t *testing.T) {
	c := newCamera()
	c.DriftEnabled = false
	c.ScrollTo(10, -5, 1, ease.Linear)

	for i := 0; i < 120; i++ {
		c.update(1.0 / 60)
	}
	if math.Abs(c.X-10) > 1e-3 || math.Abs(c.Y+5) > 1e-3 {
		t.Errorf("camera at (%v, %v), want (10, -5)", c.X, c.Y)
	}
}

func TestCameraSetDriftRangeClamps(t *testing.T) {
	c := newCamera()
	c.X, c.Y = 100, -100
	c.setDriftRange(10, 5)

	if c.X != 10 || c.Y != -5 {
		t.Errorf("offset after clamp = (%v, %v), want (10, -5)", c.X, c.Y)
	}
	if c.rangeX != 10 || c.rangeY != 5 {
		t.Errorf("range = (%v, %v), want (10, 5)", c.rangeX, c.rangeY)
	}

	// Negative ranges collapse to zero.
	c.setDriftRange(-1, -1)
	if c.rangeX != 0 || c.rangeY != 0 || c.X != 0 || c.Y != 0 {
		t.Error("negative range should collapse to zero and center the camera")
	}
}

func TestCameraDriftStaysInRange(t *testing.T) {
	c := newCamera()
	c.setDriftRange(12, 8)
	c.DriftPeriod = Range{Min: 0.1, Max: 0.3}

	for i := 0; i < 5000; i++ {
		c.update(1.0 / 60)
		if math.Abs(c.X) > 12+1e-6 || math.Abs(c.Y) > 8+1e-6 {
			t.Fatalf("drift left range at tick %d: (%v, %v)", i, c.X, c.Y)
		}
	}
}

func TestCameraDriftDisabled(t *testing.T) {
	c := newCamera()
	c.DriftEnabled = false
	c.setDriftRange(10, 10)

	for i := 0; i < 300; i++ {
		c.update(1.0 / 60)
	}
	if c.X != 0 || c.Y != 0 {
		t.Errorf("disabled drift moved the camera to (%v, %v)", c.X, c.Y)
	}
}
