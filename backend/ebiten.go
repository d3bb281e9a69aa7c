// Package backend implements input.Backend on top of ebiten's polling API.
package backend

import (
	"log/slog"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
)

// DefaultDeadzone is the stick deadzone applied before movement is derived.
const DefaultDeadzone = 0.2

// Ebiten samples ebiten's global input state. Call Update once per ebiten
// Update, before pumping the registry.
type Ebiten struct {
	axes      *AxisTracker
	logger    *slog.Logger
	connected []ebiten.GamepadID
	warned    map[ebiten.GamepadID]bool
}

type Option func(*Ebiten)

func WithDeadzone(d float64) Option {
	return func(e *Ebiten) {
		e.axes.deadzone = math.Abs(d)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Ebiten) {
		if l != nil {
			e.logger = l
		}
	}
}

func NewEbiten(opts ...Option) *Ebiten {
	e := &Ebiten{
		axes:   NewAxisTracker(ebiten.StandardGamepadAxisValue, DefaultDeadzone),
		logger: slog.Default(),
		warned: map[ebiten.GamepadID]bool{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Update advances the frame and tracks gamepad connections.
func (e *Ebiten) Update() {
	e.axes.Advance()

	ids := ebiten.AppendGamepadIDs(nil)
	for _, id := range e.connected {
		if !slices.Contains(ids, id) {
			e.logger.Info("input: gamepad disconnected", "gamepad", id)
			e.axes.Forget(id)
			delete(e.warned, id)
		}
	}
	for _, id := range ids {
		if slices.Contains(e.connected, id) {
			continue
		}
		e.logger.Info("input: gamepad connected", "gamepad", id, "name", ebiten.GamepadName(id))
		if !ebiten.IsStandardGamepadLayoutAvailable(id) && !e.warned[id] {
			e.logger.Warn("input: gamepad has no standard layout; buttons and axes will read as idle", "gamepad", id)
			e.warned[id] = true
		}
	}
	e.connected = ids
}

// ResetAxes restarts axis movement from rest. Call it whenever the axis
// actions are rebuilt, e.g. after a bindings reload.
func (e *Ebiten) ResetAxes() {
	e.axes.Reset()
}

// Gamepads returns the ids seen in the last Update.
func (e *Ebiten) Gamepads() []ebiten.GamepadID {
	return slices.Clone(e.connected)
}

func (e *Ebiten) IsKeyDown(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (e *Ebiten) IsMouseButtonDown(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (e *Ebiten) IsGamepadButtonDown(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (e *Ebiten) GamepadAxisMovement(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return e.axes.Movement(id, axis)
}

// MouseWheelMove reports vertical wheel movement, or horizontal movement when
// that is the larger of the two.
func (e *Ebiten) MouseWheelMove() float64 {
	x, y := ebiten.Wheel()
	if math.Abs(x) > math.Abs(y) {
		return x
	}
	return y
}

func (e *Ebiten) MouseWheelMoveVector() input.Vec2 {
	x, y := ebiten.Wheel()
	return input.Vec2{X: x, Y: y}
}

func (e *Ebiten) MousePosition() input.Vec2 {
	x, y := ebiten.CursorPosition()
	return input.Vec2{X: float64(x), Y: float64(y)}
}

func (e *Ebiten) IsWindowFocused() bool {
	return ebiten.IsFocused()
}

var _ input.Backend = (*Ebiten)(nil)
