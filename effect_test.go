package backdrop

import "testing"

func TestTransitionEffectUpdateUniformsMerges(t *testing.T) {
	e := newTransitionEffect(nil, map[string]any{
		"Amount":    float32(0),
		"Intensity": float32(2),
	})

	e.UpdateUniforms(map[string]any{"Amount": float32(0.5)})

	u := e.Uniforms()
	if u["Amount"].(float32) != 0.5 {
		t.Errorf("Amount = %v, want 0.5", u["Amount"])
	}
	if u["Intensity"].(float32) != 2 {
		t.Error("unrelated entries must survive a partial update")
	}
}

func TestTransitionEffectUniformsReadBack(t *testing.T) {
	e := newTransitionEffect(nil, map[string]any{"Amount": float32(0.25)})

	// The Slide/Blur kinds read the last written Amount back as PrevAmount.
	prev := e.Uniforms()["Amount"].(float32)
	e.UpdateUniforms(map[string]any{
		"PrevAmount": prev,
		"Amount":     float32(0.3),
	})

	u := e.Uniforms()
	if u["PrevAmount"].(float32) != 0.25 || u["Amount"].(float32) != 0.3 {
		t.Errorf("uniforms = %v, want PrevAmount 0.25, Amount 0.3", u)
	}
}

func TestTransitionEffectNilInitialUniforms(t *testing.T) {
	e := newTransitionEffect(nil, nil)
	if e.Uniforms() == nil {
		t.Fatal("uniform map should be allocated")
	}
	e.UpdateUniforms(map[string]any{"Amount": float32(1)})
	if e.Uniforms()["Amount"].(float32) != 1 {
		t.Error("update on empty map should store the value")
	}
}

func TestTransitionEffectDispose(t *testing.T) {
	e := newTransitionEffect(nil, map[string]any{"Amount": float32(0)})
	e.Dispose()

	if e.Uniforms() != nil {
		t.Error("uniforms should be released on Dispose")
	}
	if e.shader != nil {
		t.Error("shader reference should be dropped on Dispose")
	}
	// Double dispose must not panic.
	e.Dispose()
}
