package client

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/xsection/game"
)

var keyMap = map[glfw.Key]game.Key{
	glfw.KeyW:      game.KeyW,
	glfw.KeyA:      game.KeyA,
	glfw.KeyS:      game.KeyS,
	glfw.KeyD:      game.KeyD,
	glfw.KeyQ:      game.KeyQ,
	glfw.KeyE:      game.KeyE,
	glfw.KeySpace:  game.KeySpace,
	glfw.KeyTab:    game.KeyTab,
	glfw.KeyEscape: game.KeyEscape,
}

func translateKey(key glfw.Key) (game.Key, bool) {
	k, ok := keyMap[key]
	return k, ok
}

// feedKey forwards one key callback into the input state. Repeats are dropped,
// held keys are tracked by press and release only. Unbound keys still count
// as a release for the Tab mode switch.
func feedKey(input *game.InputState, key glfw.Key, action glfw.Action) {
	k, ok := translateKey(key)
	if !ok {
		if action == glfw.Release {
			input.ReleaseOther()
		}
		return
	}
	switch action {
	case glfw.Press:
		input.Press(k)
	case glfw.Release:
		input.Release(k)
	}
}
