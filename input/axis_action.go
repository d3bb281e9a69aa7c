package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// AxisSource selects where an AxisAction reads its movement from.
type AxisSource struct {
	wheel   bool
	gamepad ebiten.GamepadID
	axis    ebiten.StandardGamepadAxis
}

// GamepadAxisSource reads one standard axis of a gamepad.
func GamepadAxisSource(gamepad ebiten.GamepadID, axis ebiten.StandardGamepadAxis) AxisSource {
	return AxisSource{gamepad: gamepad, axis: axis}
}

// MouseWheelSource reads scalar mouse wheel movement.
func MouseWheelSource() AxisSource {
	return AxisSource{wheel: true}
}

func (s AxisSource) movement(b Backend) float64 {
	if s.wheel {
		return b.MouseWheelMove()
	}
	return b.GamepadAxisMovement(s.gamepad, s.axis)
}

func (s AxisSource) String() string {
	if s.wheel {
		return "wheel"
	}
	return fmt.Sprintf("pad%d:%s", s.gamepad, GamepadAxisName(s.axis))
}

// AxisAction accumulates relative scalar movement into a running value.
type AxisAction struct {
	source   AxisSource
	last     float64
	callback delegate[float64, float64]
}

func NewAxisAction(source AxisSource) *AxisAction {
	return &AxisAction{source: source}
}

func (a *AxisAction) Kind() Kind { return KindAxis }

func (a *AxisAction) Source() AxisSource { return a.source }

// State returns the accumulated value.
func (a *AxisAction) State() float64 { return a.last }

func (a *AxisAction) SetCallback(fn AxisFunc) *AxisAction {
	a.callback.set(fn)
	return a
}

func (a *AxisAction) AddCallback(fn AxisFunc) *AxisAction {
	a.callback.add(fn)
	return a
}

func (a *AxisAction) ClearCallbacks() *AxisAction {
	a.callback.clear()
	return a
}

func (a *AxisAction) pump(b Backend, name string) (Event, bool) {
	state := a.last
	if m := a.source.movement(b); m != 0 {
		state += m
	}
	if state == a.last {
		return Event{}, false
	}
	delta := state - a.last
	a.callback.call(name, state, delta)
	a.last = state
	return Event{Name: name, Kind: KindAxis, Value: state, Delta: delta}, true
}
