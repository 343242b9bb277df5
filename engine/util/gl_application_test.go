package util

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"testing"
)

func TestWindowHintsMatchDepthCopyFormat(t *testing.T) {
	got := make(map[glfw.Hint]int)
	for _, h := range windowHints {
		got[h.hint] = h.value
	}
	if got[glfw.DepthBits] != 24 {
		t.Errorf("depth bits = %d, want 24", got[glfw.DepthBits])
	}
	stencil, ok := got[glfw.StencilBits]
	if !ok || stencil != 0 {
		t.Errorf("stencil bits must be requested as 0, got %d (set %v)", stencil, ok)
	}
}
