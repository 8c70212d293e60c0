package backdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressCallbacks are the lifecycle hooks fired by a Progress controller.
// Any hook may be nil.
type ProgressCallbacks struct {
	// OnInit fires once, synchronously inside Start.
	OnInit func()
	// OnStart fires on the first Update tick after the delay has elapsed,
	// before that tick's OnUpdate.
	OnStart func()
	// OnUpdate fires every Update tick while playing, with the current
	// eased amount in [0, 1].
	OnUpdate func(amount float64)
	// OnComplete fires once when the amount reaches 1 naturally.
	OnComplete func()
	// OnStop fires once when Stop interrupts a playing animation.
	// A completed animation does not fire OnStop.
	OnStop func()
}

// Progress drives a single eased scalar from 0 to 1 over a fixed duration
// with an optional startup delay. It wraps a gween tween and adds the
// lifecycle callbacks the transition orchestrator sequences on.
//
// There is no internal clock: the owner calls Update once per frame with the
// frame's dt, the same contract as gween itself.
type Progress struct {
	tween    *gween.Tween
	delay    float32
	duration float32
	amount   float64
	playing  bool
	started  bool
	cb       ProgressCallbacks
}

// newProgress creates a stopped Progress from 0 to 1 over duration seconds.
// A non-positive duration completes on the first update after the delay.
func newProgress(duration, delay float32, fn ease.TweenFunc, cb ProgressCallbacks) *Progress {
	if fn == nil {
		fn = ease.Linear
	}
	p := &Progress{
		delay:    delay,
		duration: duration,
		cb:       cb,
	}
	if duration > 0 {
		p.tween = gween.New(0, 1, duration, fn)
	}
	return p
}

// Start arms the controller and fires OnInit synchronously. The first
// progress tick happens on the next Update call after any delay.
func (p *Progress) Start() {
	p.playing = true
	p.started = false
	p.amount = 0
	if p.cb.OnInit != nil {
		p.cb.OnInit()
	}
}

// Stop interrupts a playing animation and fires OnStop synchronously.
// No-op if the animation is not playing.
func (p *Progress) Stop() {
	if !p.playing {
		return
	}
	p.playing = false
	if p.cb.OnStop != nil {
		p.cb.OnStop()
	}
}

// IsPlaying reports whether the animation is between Start and its
// completion or interruption.
func (p *Progress) IsPlaying() bool {
	return p.playing
}

// Amount returns the most recent eased progress value in [0, 1].
func (p *Progress) Amount() float64 {
	return p.amount
}

// Update advances the animation by dt seconds. Must be called exactly once
// per frame while playing; extra calls double-advance progress.
func (p *Progress) Update(dt float32) {
	if !p.playing {
		return
	}

	if p.delay > 0 {
		p.delay -= dt
		if p.delay > 0 {
			return
		}
		// Carry the overshoot into the first progress tick.
		dt = -p.delay
		p.delay = 0
	}

	if !p.started {
		p.started = true
		if p.cb.OnStart != nil {
			p.cb.OnStart()
		}
	}

	if p.tween == nil {
		// Zero-length animation: jump straight to the end.
		p.finish()
		return
	}

	val, finished := p.tween.Update(dt)
	p.amount = clamp01(float64(val))
	if p.cb.OnUpdate != nil {
		p.cb.OnUpdate(p.amount)
	}
	if finished {
		p.playing = false
		if p.cb.OnComplete != nil {
			p.cb.OnComplete()
		}
	}
}

// finish drives the amount to 1 and fires the final update and completion.
func (p *Progress) finish() {
	p.amount = 1
	if p.cb.OnUpdate != nil {
		p.cb.OnUpdate(1)
	}
	p.playing = false
	if p.cb.OnComplete != nil {
		p.cb.OnComplete()
	}
}
