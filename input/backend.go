package input

import "github.com/hajimehoshi/ebiten/v2"

// Backend supplies raw device state for the current frame.
//
// Axis and wheel queries return relative movement since the previous frame;
// MousePosition is absolute.
type Backend interface {
	IsKeyDown(k ebiten.Key) bool
	IsMouseButtonDown(b ebiten.MouseButton) bool
	IsGamepadButtonDown(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool

	GamepadAxisMovement(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
	MouseWheelMove() float64
	MouseWheelMoveVector() Vec2
	MousePosition() Vec2

	IsWindowFocused() bool
}

// IsPressed reports whether a single control is currently held.
func IsPressed(b Backend, c Control) bool {
	switch c.kind {
	case ControlKeyboard:
		return b.IsKeyDown(ebiten.Key(c.code))
	case ControlMouse:
		return b.IsMouseButtonDown(ebiten.MouseButton(c.code))
	case ControlGamepad:
		return b.IsGamepadButtonDown(c.gamepad, ebiten.StandardGamepadButton(c.code))
	}
	return false
}

// IsSetPressed returns how many members of s are currently held.
func IsSetPressed(b Backend, s ControlSet) int {
	n := 0
	for _, c := range s.controls {
		if IsPressed(b, c) {
			n++
		}
	}
	return n
}
