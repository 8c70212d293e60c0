package backdrop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// scratchPool manages reusable offscreen images for effect-chain ping-pong.
// Buckets are keyed by exact dimensions: every client of the pool works at
// the live view resolution, so rounding up would only waste texture memory.
// After warmup, Acquire/Release are zero-alloc.
type scratchPool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image of exactly (w, h) pixels.
func (p *scratchPool) Acquire(w, h int) *ebiten.Image {
	key := poolKey(w, h)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// the next Acquire, not here (avoids redundant GPU work if released then
// immediately re-acquired).
func (p *scratchPool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// dispose deallocates every pooled image. The pool is reusable afterwards
// but starts cold.
func (p *scratchPool) dispose() {
	for key, stack := range p.buckets {
		for _, img := range stack {
			img.Deallocate()
		}
		delete(p.buckets, key)
	}
}
