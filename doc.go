// Package backdrop renders layered, animated backgrounds for [Ebitengine]
// and drives shader-composited transitions between them.
//
// A background is a [Background]: a backdrop image fitted to the view, a
// depth-bounded particle field floating in front of it, a slowly drifting
// camera, and an optional post-effect chain. Backgrounds render into their
// own offscreen target and composite into whatever image you hand them.
//
// Transitions are owned by a [TransitionPass]. It keeps the outgoing
// background alive, re-renders it into an intermediate buffer every frame,
// and mixes it against the incoming frame with one of six Kage-shader
// transition kinds: cut, cross-blend, directional wipe, directional slide,
// blur-dissolve, and glitch.
//
//	pass := backdrop.NewTransitionPass(640, 480)
//	next := backdrop.NewBackground(img, 640, 480)
//	pass.Transition(next, backdrop.KindWipe, backdrop.Config{Duration: 1.5})
//
// Each frame, call [TransitionPass.Update] once from your game's Update and
// [TransitionPass.Draw] from Draw after rendering the current background:
//
//	func (g *Game) Update() error {
//		g.current.Update()
//		g.pass.Update()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.current.Draw(g.frame)
//		if g.pass.IsTransitioning() {
//			g.pass.Draw(screen, g.frame)
//		} else {
//			screen.DrawImage(g.frame, nil)
//		}
//	}
//
// Ownership: the background you pass to [TransitionPass.Transition] belongs
// to you until the transition ends, at which point the pass adopts it as its
// retained previous unit and will dispose it when the next transition
// finishes. Never call [Background.Dispose] on a unit the pass has adopted.
//
// Progress animation runs on [gween] tweens with configurable easing, delay,
// and duration.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package backdrop
