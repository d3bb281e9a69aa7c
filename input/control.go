package input

import (
	"cmp"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ControlKind tags which device a Control belongs to.
type ControlKind uint8

const (
	ControlKeyboard ControlKind = iota
	ControlMouse
	ControlGamepad
)

func (k ControlKind) String() string {
	switch k {
	case ControlKeyboard:
		return "key"
	case ControlMouse:
		return "mouse"
	case ControlGamepad:
		return "pad"
	default:
		return fmt.Sprintf("ControlKind(%d)", uint8(k))
	}
}

// Control identifies one physical input: a keyboard key, a mouse button or a
// button on a specific gamepad. The zero value is a valid keyboard control.
type Control struct {
	kind    ControlKind
	code    int
	gamepad ebiten.GamepadID
}

// Key returns the control for a keyboard key.
func Key(k ebiten.Key) Control {
	return Control{kind: ControlKeyboard, code: int(k)}
}

// MouseButton returns the control for a mouse button.
func MouseButton(b ebiten.MouseButton) Control {
	return Control{kind: ControlMouse, code: int(b)}
}

// GamepadButton returns the control for a standard-layout gamepad button.
// The gamepad defaults to 0.
func GamepadButton(b ebiten.StandardGamepadButton, gamepad ...ebiten.GamepadID) Control {
	c := Control{kind: ControlGamepad, code: int(b)}
	if len(gamepad) > 0 {
		c.gamepad = gamepad[0]
	}
	return c
}

func (c Control) Kind() ControlKind {
	return c.kind
}

// Key reports the keyboard key, if c is a keyboard control.
func (c Control) Key() (ebiten.Key, bool) {
	return ebiten.Key(c.code), c.kind == ControlKeyboard
}

// MouseButton reports the mouse button, if c is a mouse control.
func (c Control) MouseButton() (ebiten.MouseButton, bool) {
	return ebiten.MouseButton(c.code), c.kind == ControlMouse
}

// GamepadButton reports the gamepad and button, if c is a gamepad control.
func (c Control) GamepadButton() (ebiten.GamepadID, ebiten.StandardGamepadButton, bool) {
	return c.gamepad, ebiten.StandardGamepadButton(c.code), c.kind == ControlGamepad
}

// Compare orders controls by kind, then gamepad, then code.
func Compare(a, b Control) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	if a.kind == ControlGamepad && a.gamepad != b.gamepad {
		return cmp.Compare(a.gamepad, b.gamepad)
	}
	return cmp.Compare(a.code, b.code)
}

// Less reports whether a sorts before b.
func (c Control) Less(o Control) bool {
	return Compare(c, o) < 0
}

func (c Control) String() string {
	switch c.kind {
	case ControlKeyboard:
		return "key:" + ebiten.Key(c.code).String()
	case ControlMouse:
		return "mouse:" + MouseButtonName(ebiten.MouseButton(c.code))
	case ControlGamepad:
		return fmt.Sprintf("pad%d:%s", c.gamepad, GamepadButtonName(ebiten.StandardGamepadButton(c.code)))
	default:
		return fmt.Sprintf("control(%d,%d)", c.kind, c.code)
	}
}
