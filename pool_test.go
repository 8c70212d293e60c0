package backdrop

import "testing"

func TestScratchPoolReusesImages(t *testing.T) {
	var p scratchPool

	img := p.Acquire(64, 48)
	if img == nil {
		t.Fatal("Acquire returned nil")
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("acquired size = %dx%d, want exactly 64x48", b.Dx(), b.Dy())
	}

	p.Release(img)
	if got := p.Acquire(64, 48); got != img {
		t.Error("Acquire after Release should return the pooled image")
	}
}

func TestScratchPoolSeparatesSizes(t *testing.T) {
	var p scratchPool

	small := p.Acquire(8, 8)
	p.Release(small)

	large := p.Acquire(16, 16)
	if large == small {
		t.Error("different sizes must not share a bucket")
	}
	p.Release(large)
}

func TestScratchPoolReleaseNil(t *testing.T) {
	var p scratchPool
	// Should not panic.
	p.Release(nil)
}

func TestScratchPoolDispose(t *testing.T) {
	var p scratchPool
	p.Release(p.Acquire(32, 32))
	p.Release(p.Acquire(64, 64))

	p.dispose()
	if len(p.buckets) != 0 {
		t.Errorf("buckets after dispose = %d, want 0", len(p.buckets))
	}

	// Pool stays usable, just cold.
	img := p.Acquire(32, 32)
	if img == nil {
		t.Error("Acquire after dispose should allocate a fresh image")
	}
}
