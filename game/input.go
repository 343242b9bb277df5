package game

import "fmt"

type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeySpace
	KeyTab
	KeyEscape
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyQ:
		return "Q"
	case KeyE:
		return "E"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

type ControlMode uint8

const (
	FreeLook ControlMode = iota
	PlayerControl
)

func (m ControlMode) String() string {
	if m == PlayerControl {
		return "PlayerControl"
	}
	return "FreeLook"
}

func (m ControlMode) toggled() ControlMode {
	if m == FreeLook {
		return PlayerControl
	}
	return FreeLook
}

// InputState tracks held keys and the control mode between frames.
// Releasing any key while Tab is held switches the mode, once per Tab hold.
type InputState struct {
	held          uint16
	mode          ControlMode
	toggledInHold bool
}

func NewInputState() *InputState {
	return &InputState{mode: FreeLook}
}

func (s *InputState) Press(k Key) {
	if k >= keyCount {
		return
	}
	s.held |= 1 << k
}

func (s *InputState) Release(k Key) {
	if k >= keyCount {
		return
	}
	s.toggleIfTabHeld()
	s.held &^= 1 << k
	if k == KeyTab {
		s.toggledInHold = false
	}
}

// ReleaseOther records the release of a key without a game binding. It only
// counts towards the Tab mode switch.
func (s *InputState) ReleaseOther() {
	s.toggleIfTabHeld()
}

func (s *InputState) toggleIfTabHeld() {
	if s.isHeld(KeyTab) && !s.toggledInHold {
		s.mode = s.mode.toggled()
		s.toggledInHold = true
	}
}

func (s *InputState) isHeld(k Key) bool {
	return s.held&(1<<k) != 0
}

func (s *InputState) Mode() ControlMode {
	return s.mode
}

// Snapshot freezes the current state for one frame.
func (s *InputState) Snapshot() InputSnapshot {
	return InputSnapshot{held: s.held, Mode: s.mode}
}

type InputSnapshot struct {
	held uint16
	Mode ControlMode
}

func (s InputSnapshot) Held(k Key) bool {
	return k < keyCount && s.held&(1<<k) != 0
}

// FrameCommands is what the held keys ask for this frame. Axis values are
// -1, 0 or +1, opposing keys cancel out.
type FrameCommands struct {
	StrafeX int
	StrafeZ int
	Walk    int
	Rotate  int
	Jump    bool
	Quit    bool
}

func (s InputSnapshot) axis(positive, negative Key) int {
	v := 0
	if s.Held(positive) {
		v++
	}
	if s.Held(negative) {
		v--
	}
	return v
}

func (s InputSnapshot) Commands() FrameCommands {
	cmd := FrameCommands{
		Rotate: s.axis(KeyQ, KeyE),
		Quit:   s.Held(KeyEscape),
	}
	switch s.Mode {
	case FreeLook:
		cmd.StrafeX = s.axis(KeyW, KeyS)
		cmd.StrafeZ = s.axis(KeyA, KeyD)
	case PlayerControl:
		cmd.Walk = s.axis(KeyA, KeyD)
		cmd.Jump = s.Held(KeySpace)
	}
	return cmd
}
