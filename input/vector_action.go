package input

import "fmt"

type vectorSourceKind uint8

const (
	vectorWheel vectorSourceKind = iota
	vectorPosition
	vectorGamepadAxes
)

// VectorSource selects where a VectorAction reads its 2D value from.
type VectorSource struct {
	kind       vectorSourceKind
	horizontal AxisSource
	vertical   AxisSource
}

// MouseWheelVectorSource reports this frame's wheel offset on both axes.
func MouseWheelVectorSource() VectorSource {
	return VectorSource{kind: vectorWheel}
}

// MousePositionSource reports the absolute cursor position.
func MousePositionSource() VectorSource {
	return VectorSource{kind: vectorPosition}
}

// GamepadAxesSource accumulates two gamepad axes into X and Y. The axes may
// live on different gamepads.
func GamepadAxesSource(horizontal, vertical AxisSource) VectorSource {
	return VectorSource{kind: vectorGamepadAxes, horizontal: horizontal, vertical: vertical}
}

func (s VectorSource) String() string {
	switch s.kind {
	case vectorWheel:
		return "wheel"
	case vectorPosition:
		return "cursor"
	default:
		return fmt.Sprintf("axes(%s, %s)", s.horizontal, s.vertical)
	}
}

// VectorAction reports a 2D value from the mouse or a pair of gamepad axes.
type VectorAction struct {
	source   VectorSource
	last     Vec2
	callback delegate[Vec2, Vec2]
}

func NewVectorAction(source VectorSource) *VectorAction {
	return &VectorAction{source: source}
}

func (a *VectorAction) Kind() Kind { return KindVector }

func (a *VectorAction) Source() VectorSource { return a.source }

func (a *VectorAction) State() Vec2 { return a.last }

func (a *VectorAction) SetCallback(fn VectorFunc) *VectorAction {
	a.callback.set(fn)
	return a
}

func (a *VectorAction) AddCallback(fn VectorFunc) *VectorAction {
	a.callback.add(fn)
	return a
}

func (a *VectorAction) ClearCallbacks() *VectorAction {
	a.callback.clear()
	return a
}

func (a *VectorAction) pump(b Backend, name string) (Event, bool) {
	state := a.last
	switch a.source.kind {
	case vectorWheel:
		state = b.MouseWheelMoveVector()
	case vectorPosition:
		state = b.MousePosition()
	case vectorGamepadAxes:
		state.X += a.source.horizontal.movement(b)
		state.Y += a.source.vertical.movement(b)
	}
	return dispatchVector(&a.last, &a.callback, name, KindVector, state)
}

// dispatchVector is shared by vector and directional actions.
func dispatchVector(last *Vec2, cb *delegate[Vec2, Vec2], name string, kind Kind, state Vec2) (Event, bool) {
	if state.Equals(*last) {
		return Event{}, false
	}
	delta := state.Sub(*last)
	cb.call(name, state, delta)
	*last = state
	return Event{Name: name, Kind: kind, Vector: state, VectorDelta: delta}, true
}
