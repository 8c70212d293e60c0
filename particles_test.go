package backdrop

import (
	"testing"
)

func testFieldBounds() Rect {
	return Rect{X: -5, Y: -2.5, Width: 110, Height: 55}
}

func TestFieldDefaultCount(t *testing.T) {
	f := newParticleField(FieldConfig{}, testFieldBounds(), 0.1)
	if len(f.particles) != 160 {
		t.Errorf("default count = %d, want 160", len(f.particles))
	}
}

func TestFieldSpawnWithinBoundsAndDepth(t *testing.T) {
	b := testFieldBounds()
	f := newParticleField(FieldConfig{Count: 64}, b, 0.155)
	for i, p := range f.particles {
		if !b.Contains(p.x, p.y) {
			t.Fatalf("particle %d spawned at (%v, %v) outside bounds", i, p.x, p.y)
		}
		if p.depth < 0 || p.depth > 0.155 {
			t.Fatalf("particle %d depth = %v, want [0, 0.155]", i, p.depth)
		}
	}
}

func TestFieldUpdateWraps(t *testing.T) {
	b := testFieldBounds()
	f := newParticleField(FieldConfig{
		Count: 32,
		Speed: Range{Min: 500, Max: 500},
	}, b, 0.1)

	// Fast particles for many ticks: everything must stay wrapped inside.
	for i := 0; i < 600; i++ {
		f.update(1.0 / 60)
	}
	for i, p := range f.particles {
		if p.x < b.X || p.x >= b.X+b.Width || p.y < b.Y || p.y >= b.Y+b.Height {
			t.Fatalf("particle %d escaped to (%v, %v)", i, p.x, p.y)
		}
	}
}

func TestFieldSetBoundsRescales(t *testing.T) {
	old := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	f := newParticleField(FieldConfig{Count: 8}, old, 0.2)

	// Pin a particle to the center and a known depth.
	f.particles[0].x = 50
	f.particles[0].y = 50
	f.particles[0].depth = 0.2

	f.setBounds(Rect{X: 0, Y: 0, Width: 200, Height: 50}, 0.1)

	p := f.particles[0]
	if p.x != 100 || p.y != 25 {
		t.Errorf("center particle moved to (%v, %v), want (100, 25)", p.x, p.y)
	}
	if p.depth != 0.1 {
		t.Errorf("depth = %v, want clamped to 0.1", p.depth)
	}
}

func TestFieldTwinklePhaseSpread(t *testing.T) {
	f := newParticleField(FieldConfig{Count: 64}, testFieldBounds(), 0.1)
	same := true
	for i := 1; i < len(f.particles); i++ {
		if f.particles[i].phase != f.particles[0].phase {
			same = false
			break
		}
	}
	if same {
		t.Error("twinkle phases should be randomized per particle")
	}
}

func TestEnsureParticleDot(t *testing.T) {
	dot := ensureParticleDot()
	if dot == nil {
		t.Fatal("dot image should be built")
	}
	if ensureParticleDot() != dot {
		t.Error("dot image should be shared, not rebuilt")
	}
	b := dot.Bounds()
	if b.Dx() != particleDotSize || b.Dy() != particleDotSize {
		t.Errorf("dot size = %dx%d, want %dx%d", b.Dx(), b.Dy(), particleDotSize, particleDotSize)
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: 3, Max: 3}
	if r.Random() != 3 {
		t.Error("degenerate range should return Min")
	}
	r = Range{Min: 1, Max: 2}
	for i := 0; i < 32; i++ {
		v := r.Random()
		if v < 1 || v > 2 {
			t.Fatalf("Random() = %v, want [1, 2]", v)
		}
	}
}

// --- Benchmarks ---

func BenchmarkFieldUpdate(b *testing.B) {
	f := newParticleField(FieldConfig{Count: 512}, testFieldBounds(), 0.155)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.update(1.0 / 60)
	}
}

func BenchmarkFieldUpdateWithTwinkle(b *testing.B) {
	cfg := DefaultFieldConfig()
	cfg.Count = 512
	f := newParticleField(cfg, testFieldBounds(), 0.155)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.update(1.0 / 60)
	}
}
