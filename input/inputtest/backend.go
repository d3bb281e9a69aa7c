// Package inputtest provides a scriptable input.Backend for tests.
package inputtest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
)

type padButton struct {
	id     ebiten.GamepadID
	button ebiten.StandardGamepadButton
}

type padAxis struct {
	id   ebiten.GamepadID
	axis ebiten.StandardGamepadAxis
}

// Backend holds device state set directly by a test. Relative movement
// (axes and wheel) is consumed by Frame, mirroring a real per-frame backend.
type Backend struct {
	keys     map[ebiten.Key]bool
	mouse    map[ebiten.MouseButton]bool
	pad      map[padButton]bool
	axes     map[padAxis]float64
	wheel    input.Vec2
	position input.Vec2
	focused  bool
}

// New returns a focused backend with nothing held.
func New() *Backend {
	return &Backend{
		keys:    map[ebiten.Key]bool{},
		mouse:   map[ebiten.MouseButton]bool{},
		pad:     map[padButton]bool{},
		axes:    map[padAxis]float64{},
		focused: true,
	}
}

// Hold marks controls as held.
func (b *Backend) Hold(controls ...input.Control) *Backend {
	for _, c := range controls {
		b.setControl(c, true)
	}
	return b
}

// Release marks controls as released.
func (b *Backend) Release(controls ...input.Control) *Backend {
	for _, c := range controls {
		b.setControl(c, false)
	}
	return b
}

// ReleaseAll releases every key and button.
func (b *Backend) ReleaseAll() *Backend {
	clear(b.keys)
	clear(b.mouse)
	clear(b.pad)
	return b
}

func (b *Backend) setControl(c input.Control, down bool) {
	if k, ok := c.Key(); ok {
		b.keys[k] = down
		return
	}
	if m, ok := c.MouseButton(); ok {
		b.mouse[m] = down
		return
	}
	if id, btn, ok := c.GamepadButton(); ok {
		b.pad[padButton{id, btn}] = down
	}
}

// MoveAxis queues relative movement for one gamepad axis.
func (b *Backend) MoveAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis, delta float64) *Backend {
	b.axes[padAxis{id, axis}] += delta
	return b
}

// Scroll queues wheel movement.
func (b *Backend) Scroll(x, y float64) *Backend {
	b.wheel = b.wheel.Add(input.Vec2{X: x, Y: y})
	return b
}

func (b *Backend) MoveCursor(x, y float64) *Backend {
	b.position = input.Vec2{X: x, Y: y}
	return b
}

func (b *Backend) SetFocused(focused bool) *Backend {
	b.focused = focused
	return b
}

// Frame clears relative movement, as happens between two real frames.
func (b *Backend) Frame() {
	clear(b.axes)
	b.wheel = input.Vec2{}
}

func (b *Backend) IsKeyDown(k ebiten.Key) bool { return b.keys[k] }

func (b *Backend) IsMouseButtonDown(m ebiten.MouseButton) bool { return b.mouse[m] }

func (b *Backend) IsGamepadButtonDown(id ebiten.GamepadID, btn ebiten.StandardGamepadButton) bool {
	return b.pad[padButton{id, btn}]
}

func (b *Backend) GamepadAxisMovement(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return b.axes[padAxis{id, axis}]
}

// MouseWheelMove reports the vertical wheel offset, or the horizontal one when
// it is larger.
func (b *Backend) MouseWheelMove() float64 {
	if abs(b.wheel.X) > abs(b.wheel.Y) {
		return b.wheel.X
	}
	return b.wheel.Y
}

func (b *Backend) MouseWheelMoveVector() input.Vec2 { return b.wheel }

func (b *Backend) MousePosition() input.Vec2 { return b.position }

func (b *Backend) IsWindowFocused() bool { return b.focused }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
