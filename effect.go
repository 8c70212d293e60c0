package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionEffect wraps one transition shader plus its live uniform values
// for the duration of a single transition. The orchestrator constructs one
// when a transition starts and disposes it when the transition ends or is
// replaced.
type TransitionEffect struct {
	shader   *ebiten.Shader
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// newTransitionEffect creates an effect from a compiled shader and its
// initial uniform set. The effect takes ownership of the map.
func newTransitionEffect(shader *ebiten.Shader, uniforms map[string]any) *TransitionEffect {
	if uniforms == nil {
		uniforms = make(map[string]any)
	}
	return &TransitionEffect{
		shader:   shader,
		uniforms: uniforms,
	}
}

// UpdateUniforms merges partial into the live uniform set. Entries not named
// in partial keep their current values.
func (e *TransitionEffect) UpdateUniforms(partial map[string]any) {
	for name, value := range partial {
		e.uniforms[name] = value
	}
}

// Uniforms returns the live uniform set. The Slide and Blur kinds read the
// previously written Amount back from here to derive PrevAmount.
func (e *TransitionEffect) Uniforms() map[string]any {
	return e.uniforms
}

// Render executes the shader with current bound as source 0 and previous as
// source 1, writing into dst. Both sources must match dst's dimensions.
func (e *TransitionEffect) Render(dst, current, previous *ebiten.Image) {
	bounds := current.Bounds()
	e.shaderOp.Images[0] = current
	e.shaderOp.Images[1] = previous
	e.shaderOp.Uniforms = e.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), e.shader, &e.shaderOp)
}

// Dispose drops the effect's uniform state and image bindings. The shader
// itself is shared across transitions (compiled lazily once per process) and
// is not released here. Safe to call more than once.
func (e *TransitionEffect) Dispose() {
	e.shader = nil
	e.uniforms = nil
	e.shaderOp.Images[0] = nil
	e.shaderOp.Images[1] = nil
	e.shaderOp.Uniforms = nil
}
