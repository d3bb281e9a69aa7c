package input

import "github.com/hajimehoshi/ebiten/v2"

// ButtonSetAction watches every control of set. See ButtonAction for combo.
func ButtonSetAction(set ControlSet, combo bool) *ButtonAction {
	return NewButtonAction(set, combo)
}

func ControlAction(c Control, combo bool) *ButtonAction {
	return NewButtonAction(NewControlSet(c), combo)
}

func KeyAction(k ebiten.Key, combo bool) *ButtonAction {
	return ControlAction(Key(k), combo)
}

func MouseButtonAction(b ebiten.MouseButton, combo bool) *ButtonAction {
	return ControlAction(MouseButton(b), combo)
}

func GamepadButtonAction(b ebiten.StandardGamepadButton, gamepad ebiten.GamepadID, combo bool) *ButtonAction {
	return ControlAction(GamepadButton(b, gamepad), combo)
}

// ComboAction is pressed only while every control is held, e.g. Ctrl+S.
func ComboAction(controls ...Control) *ButtonAction {
	return NewButtonAction(NewControlSet(controls...), true)
}

func GamepadAxisAction(axis ebiten.StandardGamepadAxis, gamepad ebiten.GamepadID) *AxisAction {
	return NewAxisAction(GamepadAxisSource(gamepad, axis))
}

func MouseWheelAction() *AxisAction {
	return NewAxisAction(MouseWheelSource())
}

func MouseWheelVectorAction() *VectorAction {
	return NewVectorAction(MouseWheelVectorSource())
}

func MousePositionAction() *VectorAction {
	return NewVectorAction(MousePositionSource())
}

// GamepadAxesAction pairs two axes into a vector. A negative gamepadV uses
// the same gamepad as the horizontal axis.
func GamepadAxesAction(horizontal, vertical ebiten.StandardGamepadAxis, gamepadH, gamepadV ebiten.GamepadID) *VectorAction {
	if gamepadV < 0 {
		gamepadV = gamepadH
	}
	return NewVectorAction(GamepadAxesSource(
		GamepadAxisSource(gamepadH, horizontal),
		GamepadAxisSource(gamepadV, vertical),
	))
}

// LeftStickAction is the usual movement stick of gamepad 0.
func LeftStickAction() *VectorAction {
	return GamepadAxesAction(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical, 0, -1)
}

func QuadAction(up, down, left, right ControlSet, normalize bool) *DirectionalAction {
	return NewDirectionalAction(up, down, left, right, normalize)
}

// WASD layout: W/S/A/D plus the arrow keys.
var (
	DefaultUp    = NewControlSet(Key(ebiten.KeyW), Key(ebiten.KeyArrowUp))
	DefaultDown  = NewControlSet(Key(ebiten.KeyS), Key(ebiten.KeyArrowDown))
	DefaultLeft  = NewControlSet(Key(ebiten.KeyA), Key(ebiten.KeyArrowLeft))
	DefaultRight = NewControlSet(Key(ebiten.KeyD), Key(ebiten.KeyArrowRight))
)

func WASDAction(normalize bool) *DirectionalAction {
	return QuadAction(DefaultUp, DefaultDown, DefaultLeft, DefaultRight, normalize)
}

// DPadAction maps the standard gamepad d-pad of one gamepad.
func DPadAction(gamepad ebiten.GamepadID, normalize bool) *DirectionalAction {
	return QuadAction(
		NewControlSet(GamepadButton(ebiten.StandardGamepadButtonLeftTop, gamepad)),
		NewControlSet(GamepadButton(ebiten.StandardGamepadButtonLeftBottom, gamepad)),
		NewControlSet(GamepadButton(ebiten.StandardGamepadButtonLeftLeft, gamepad)),
		NewControlSet(GamepadButton(ebiten.StandardGamepadButtonLeftRight, gamepad)),
		normalize,
	)
}
