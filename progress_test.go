package backdrop

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// progressRecorder collects callback firings in order.
type progressRecorder struct {
	events  []string
	amounts []float64
}

func (r *progressRecorder) callbacks() ProgressCallbacks {
	return ProgressCallbacks{
		OnInit:  func() { r.events = append(r.events, "init") },
		OnStart: func() { r.events = append(r.events, "start") },
		OnUpdate: func(a float64) {
			r.events = append(r.events, "update")
			r.amounts = append(r.amounts, a)
		},
		OnComplete: func() { r.events = append(r.events, "complete") },
		OnStop:     func() { r.events = append(r.events, "stop") },
	}
}

func TestProgressCallbackOrder(t *testing.T) {
	var rec progressRecorder
	p := newProgress(0.3, 0, ease.Linear, rec.callbacks())

	if p.IsPlaying() {
		t.Error("should not be playing before Start")
	}
	p.Start()
	if len(rec.events) != 1 || rec.events[0] != "init" {
		t.Fatalf("events after Start = %v, want [init]", rec.events)
	}
	if !p.IsPlaying() {
		t.Error("should be playing after Start")
	}

	for i := 0; i < 10 && p.IsPlaying(); i++ {
		p.Update(0.1)
	}

	if p.IsPlaying() {
		t.Fatal("should have completed")
	}
	if rec.events[1] != "start" {
		t.Errorf("second event = %q, want start", rec.events[1])
	}
	last := rec.events[len(rec.events)-1]
	if last != "complete" {
		t.Errorf("last event = %q, want complete", last)
	}
	for _, e := range rec.events {
		if e == "stop" {
			t.Error("natural completion must not fire stop")
		}
	}
	final := rec.amounts[len(rec.amounts)-1]
	if final != 1 {
		t.Errorf("final amount = %v, want 1", final)
	}
}

func TestProgressAmountsMonotonic(t *testing.T) {
	var rec progressRecorder
	p := newProgress(1, 0, ease.Linear, rec.callbacks())
	p.Start()
	for i := 0; i < 100 && p.IsPlaying(); i++ {
		p.Update(1.0 / 60)
	}
	for i := 1; i < len(rec.amounts); i++ {
		if rec.amounts[i] < rec.amounts[i-1] {
			t.Fatalf("amounts not monotonic at %d: %v < %v", i, rec.amounts[i], rec.amounts[i-1])
		}
	}
}

func TestProgressDelay(t *testing.T) {
	var rec progressRecorder
	p := newProgress(1, 0.25, ease.Linear, rec.callbacks())
	p.Start()

	// Two ticks inside the delay: no start, no updates.
	p.Update(0.1)
	p.Update(0.1)
	if len(rec.events) != 1 {
		t.Fatalf("events during delay = %v, want [init]", rec.events)
	}
	if !p.IsPlaying() {
		t.Error("should still be playing during delay")
	}

	// Third tick crosses the delay: start fires, then the first update.
	p.Update(0.1)
	if len(rec.events) < 3 || rec.events[1] != "start" || rec.events[2] != "update" {
		t.Fatalf("events after delay = %v, want [init start update ...]", rec.events)
	}
}

func TestProgressZeroDuration(t *testing.T) {
	var rec progressRecorder
	p := newProgress(0, 0, ease.Linear, rec.callbacks())
	p.Start()

	p.Update(1.0 / 60)
	if p.IsPlaying() {
		t.Fatal("zero duration should complete on the first update")
	}
	want := []string{"init", "start", "update", "complete"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i, e := range want {
		if rec.events[i] != e {
			t.Fatalf("events = %v, want %v", rec.events, want)
		}
	}
	if p.Amount() != 1 {
		t.Errorf("amount = %v, want 1", p.Amount())
	}
}

func TestProgressZeroDurationAfterDelay(t *testing.T) {
	var rec progressRecorder
	p := newProgress(0, 0.15, ease.Linear, rec.callbacks())
	p.Start()

	p.Update(0.1)
	if !p.IsPlaying() {
		t.Fatal("should still be waiting out the delay")
	}
	p.Update(0.1)
	if p.IsPlaying() {
		t.Fatal("should complete on the first update after the delay")
	}
	if p.Amount() != 1 {
		t.Errorf("amount = %v, want 1", p.Amount())
	}
}

func TestProgressStop(t *testing.T) {
	var rec progressRecorder
	p := newProgress(1, 0, ease.Linear, rec.callbacks())
	p.Start()
	p.Update(0.1)

	p.Stop()
	if p.IsPlaying() {
		t.Error("should not be playing after Stop")
	}
	last := rec.events[len(rec.events)-1]
	if last != "stop" {
		t.Errorf("last event = %q, want stop", last)
	}

	// A second Stop and further Updates are no-ops.
	n := len(rec.events)
	p.Stop()
	p.Update(0.1)
	if len(rec.events) != n {
		t.Errorf("stopped animation fired %d extra events", len(rec.events)-n)
	}
	for _, e := range rec.events {
		if e == "complete" {
			t.Error("stopped animation must not fire complete")
		}
	}
}

func TestProgressLinearMidpoint(t *testing.T) {
	p := newProgress(2, 0, ease.Linear, ProgressCallbacks{})
	p.Start()
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60)
	}
	if a := p.Amount(); a < 0.48 || a > 0.52 {
		t.Errorf("amount at t=1s of 2s = %v, want ~0.5", a)
	}
}

func TestProgressNilCallbacks(t *testing.T) {
	p := newProgress(0.1, 0.05, nil, ProgressCallbacks{})
	p.Start()
	for i := 0; i < 60 && p.IsPlaying(); i++ {
		p.Update(1.0 / 60)
	}
	if p.IsPlaying() {
		t.Error("should complete without callbacks")
	}
}
