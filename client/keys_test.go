package client

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/xsection/game"
	"testing"
)

func TestFeedKey(t *testing.T) {
	input := game.NewInputState()

	feedKey(input, glfw.KeyW, glfw.Press)
	feedKey(input, glfw.KeyF, glfw.Press)
	snap := input.Snapshot()
	if !snap.Held(game.KeyW) {
		t.Errorf("W not held after press")
	}

	feedKey(input, glfw.KeyW, glfw.Repeat)
	feedKey(input, glfw.KeyW, glfw.Release)
	if input.Snapshot().Held(game.KeyW) {
		t.Errorf("W still held after release")
	}

	feedKey(input, glfw.KeyTab, glfw.Press)
	feedKey(input, glfw.KeyTab, glfw.Release)
	if input.Mode() != game.PlayerControl {
		t.Errorf("tab tap did not switch to player control")
	}
}

func TestUnboundKeyReleaseSwitchesModeWhileTabHeld(t *testing.T) {
	input := game.NewInputState()
	feedKey(input, glfw.KeyTab, glfw.Press)
	feedKey(input, glfw.KeyF, glfw.Press)
	feedKey(input, glfw.KeyF, glfw.Release)
	if input.Mode() != game.PlayerControl {
		t.Fatalf("mode = %v after releasing F with Tab held, want PlayerControl", input.Mode())
	}
	feedKey(input, glfw.KeyTab, glfw.Release)
	if input.Mode() != game.PlayerControl {
		t.Errorf("mode switched twice in one Tab hold")
	}

	feedKey(input, glfw.KeyF, glfw.Release)
	if input.Mode() != game.PlayerControl {
		t.Errorf("unbound release without Tab switched the mode")
	}
}

func TestTranslateKeyCoversGameKeys(t *testing.T) {
	seen := make(map[game.Key]bool)
	for glfwKey := range keyMap {
		k, ok := translateKey(glfwKey)
		if !ok {
			t.Fatalf("%v not translated", glfwKey)
		}
		seen[k] = true
	}
	if len(seen) != 9 {
		t.Errorf("%d distinct game keys mapped, want 9", len(seen))
	}
	if _, ok := translateKey(glfw.KeyUnknown); ok {
		t.Errorf("unknown key translated")
	}
}
