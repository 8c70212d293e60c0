package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionPass orchestrates transitions between backgrounds. It retains
// the outgoing Background, re-renders it into an intermediate buffer each
// frame, and composites it against the incoming frame with the active
// transition shader while a progress animation runs 0 → 1.
//
// The pass always holds a previous unit: a blank one is synthesized at
// construction and whenever Transition is called without a unit. Starting a
// new transition while one is in flight stops the old one synchronously —
// its previous unit and effect are disposed before the new transition
// observes any state.
type TransitionPass struct {
	// OnTransitionStart, when set, fires synchronously inside Transition
	// with the retained previous unit and the incoming one.
	OnTransitionStart func(prev, next *Background)
	// OnTransitionEnd, when set, fires when a transition completes or is
	// stopped, with the unit the pass has just adopted.
	OnTransitionEnd func(adopted *Background)

	prev     *Background
	buffer   *RenderTarget
	effect   *TransitionEffect
	anim     *Progress
	enabled  bool
	w, h     int
	resF32   [2]float32 // persistent buffer for the glitch Resolution uniform
	imgOp    ebiten.DrawImageOptions
	disposed bool
}

// NewTransitionPass creates an idle pass at the given view size with a
// synthesized blank previous unit.
func NewTransitionPass(w, h int) *TransitionPass {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &TransitionPass{
		prev:   NewBackground(nil, w, h),
		buffer: NewRenderTarget(w, h),
		w:      w,
		h:      h,
	}
}

// Previous returns the retained previous unit. The pass owns it; callers
// may draw it but must never dispose it.
func (p *TransitionPass) Previous() *Background {
	return p.prev
}

// IsTransitioning reports whether a transition is in flight, including the
// configured startup delay.
func (p *TransitionPass) IsTransitioning() bool {
	return p.anim != nil && p.anim.IsPlaying()
}

// Transition starts a transition to next with the given kind. Config fields
// that are zero take their documented defaults. A nil next synthesizes a
// blank unit at the pass's current size, so the pipeline always has two
// valid endpoints.
//
// Ownership: next stays with the caller until the transition ends, at which
// point the pass adopts it as the new previous unit and the old previous
// unit is disposed. Any in-flight transition is stopped (and fully wound
// down) synchronously before the new one starts.
func (p *TransitionPass) Transition(next *Background, kind Kind, cfg Config) {
	if p.disposed {
		if debugMode {
			panic("backdrop: Transition on disposed TransitionPass")
		}
		return
	}
	rc := resolveConfig(kind, cfg)

	// Runs the in-flight transition's ending logic before anything of the
	// new transition becomes observable.
	if p.anim != nil {
		p.anim.Stop()
	}

	if next == nil {
		next = NewBackground(nil, p.w, p.h)
	}
	if p.OnTransitionStart != nil {
		p.OnTransitionStart(p.prev, next)
	}

	adopted := next
	p.anim = newProgress(rc.duration, rc.delay, rc.easing, ProgressCallbacks{
		OnStart:    func() { p.begin(kind, rc) },
		OnUpdate:   func(a float64) { p.applyUniforms(kind, rc, a) },
		OnComplete: func() { p.finish(adopted) },
		OnStop:     func() { p.finish(adopted) },
	})
	p.anim.Start()
}

// begin constructs the kind-specific effect. Fired by the progress
// animation on its first tick after the delay.
func (p *TransitionPass) begin(kind Kind, rc resolvedConfig) {
	if p.effect != nil {
		p.effect.Dispose()
	}
	p.effect = p.buildEffect(kind, rc)
	p.enabled = true
}

// buildEffect compiles (lazily, process-wide) and parameterizes the shader
// for the given kind.
func (p *TransitionPass) buildEffect(kind Kind, rc resolvedConfig) *TransitionEffect {
	switch kind {
	case KindNone:
		// A cut: fixed at full mix for the whole (usually zero-length)
		// transition.
		return newTransitionEffect(ensureBlendShader(), map[string]any{
			"MixRatio": float32(1),
		})
	case KindBlend:
		return newTransitionEffect(ensureBlendShader(), map[string]any{
			"MixRatio": float32(0),
		})
	case KindWipe:
		return newTransitionEffect(ensureWipeShader(), map[string]any{
			"Amount":   float32(0),
			"Aspect":   float32(float64(p.w) / float64(p.h)),
			"Gradient": float32(rc.gradient),
			"Angle":    float32(rc.angle),
			"DirX":     rc.dirX,
			"DirY":     rc.dirY,
		})
	case KindSlide:
		return newTransitionEffect(ensureSlideShader(), map[string]any{
			"Slides":     float32(rc.slides),
			"Intensity":  float32(rc.intensity),
			"Samples":    float32(rc.samples),
			"DirX":       rc.dirX,
			"DirY":       rc.dirY,
			"PrevAmount": float32(0),
			"Amount":     float32(0),
		})
	case KindBlur:
		return newTransitionEffect(ensureBlurShader(), map[string]any{
			"Intensity":  float32(rc.intensity),
			"Samples":    float32(rc.samples),
			"PrevAmount": float32(0),
			"Amount":     float32(0),
		})
	case KindGlitch:
		p.resF32[0] = float32(p.w)
		p.resF32[1] = float32(p.h)
		return newTransitionEffect(ensureGlitchShader(), map[string]any{
			"Amount":     float32(0),
			"Seed":       float32(rc.seed),
			"Resolution": p.resF32[:],
		})
	default:
		return newTransitionEffect(ensureBlendShader(), map[string]any{
			"MixRatio": float32(0),
		})
	}
}

// applyUniforms recomputes the kind's per-frame uniforms from the live
// progress amount. Wipe re-samples the live aspect ratio and Glitch the live
// resolution, so a mid-transition resize changes the very next frame.
func (p *TransitionPass) applyUniforms(kind Kind, rc resolvedConfig, amount float64) {
	if p.effect == nil {
		return
	}
	switch kind {
	case KindNone:
		// Fixed at full mix.
	case KindBlend:
		p.effect.UpdateUniforms(map[string]any{
			"MixRatio": float32(amount),
		})
	case KindWipe:
		p.effect.UpdateUniforms(map[string]any{
			"Amount": float32(amount),
			"Aspect": float32(float64(p.w) / float64(p.h)),
		})
	case KindSlide, KindBlur:
		// The previously written amount becomes PrevAmount, spanning the
		// motion-blur window across exactly one frame of progress.
		prevAmount := float32(0)
		if v, ok := p.effect.Uniforms()["Amount"].(float32); ok {
			prevAmount = v
		}
		p.effect.UpdateUniforms(map[string]any{
			"PrevAmount": prevAmount,
			"Amount":     float32(amount),
		})
	case KindGlitch:
		p.resF32[0] = float32(p.w)
		p.resF32[1] = float32(p.h)
		p.effect.UpdateUniforms(map[string]any{
			"Amount": float32(amount),
		})
	}
}

// finish runs the ending logic for both natural completion and forced stop:
// the effect is released, the old previous unit disposed, and the incoming
// unit adopted.
func (p *TransitionPass) finish(adopted *Background) {
	if p.effect != nil {
		p.effect.Dispose()
		p.effect = nil
	}
	old := p.prev
	p.prev = adopted
	p.enabled = false
	if old != nil && old != adopted {
		old.Dispose()
	}
	if p.OnTransitionEnd != nil {
		p.OnTransitionEnd(adopted)
	}
}

// Update advances the progress animation and, while a transition is in
// flight, the retained previous unit's camera and particles. Call exactly
// once per frame.
func (p *TransitionPass) Update() {
	if p.disposed {
		if debugMode {
			panic("backdrop: Update on disposed TransitionPass")
		}
		return
	}
	if p.anim == nil || !p.anim.IsPlaying() {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	p.anim.Update(dt)
	// The animation may have just completed, handing the previous unit's
	// ticking back to the caller; only advance it while still in flight.
	if p.anim.IsPlaying() {
		p.prev.Update()
	}
}

// Draw composites the transition into dst. current is the caller's
// already-rendered incoming frame. Outside a transition this is a no-op and
// the caller draws its frame directly. During the startup delay the
// outgoing background still owns the screen.
func (p *TransitionPass) Draw(dst, current *ebiten.Image) {
	if p.disposed || dst == nil {
		return
	}
	if p.anim == nil || !p.anim.IsPlaying() {
		return
	}

	p.buffer.Clear()
	p.prev.Draw(p.buffer.Image())

	if p.effect == nil {
		// Starting state: the effect is not constructed until the first
		// progress tick, so show the retained background unmixed.
		op := &p.imgOp
		op.GeoM.Reset()
		op.ColorScale.Reset()
		dst.DrawImage(p.buffer.Image(), op)
		return
	}
	p.effect.Render(dst, current, p.buffer.Image())
}

// SetSize propagates the new resolution synchronously to the previous unit
// and the intermediate buffer. An active transition continues with the live
// dimensions on its next update.
func (p *TransitionPass) SetSize(w, h int) {
	if p.disposed {
		if debugMode {
			panic("backdrop: SetSize on disposed TransitionPass")
		}
		return
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == p.w && h == p.h {
		return
	}
	p.w, p.h = w, h
	p.prev.SetSize(w, h)
	p.buffer.Resize(w, h)
}

// Dispose winds down any in-flight transition, then releases the previous
// unit, the intermediate buffer, and the active effect. The pass must not
// be used afterwards.
func (p *TransitionPass) Dispose() {
	if p.disposed {
		if debugMode {
			panic("backdrop: double Dispose of TransitionPass")
		}
		return
	}
	if p.anim != nil {
		p.anim.Stop()
		p.anim = nil
	}
	p.disposed = true
	if p.effect != nil {
		p.effect.Dispose()
		p.effect = nil
	}
	p.prev.Dispose()
	p.prev = nil
	p.buffer.Dispose()
}
