package input

import "fmt"

// Kind identifies the variant of an Action.
type Kind uint8

const (
	KindButton Kind = iota + 1
	KindAxis
	KindVector
	KindDirectional
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindAxis:
		return "axis"
	case KindVector:
		return "vector"
	case KindDirectional:
		return "directional"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Action is a named source of edge-triggered input notifications. The set of
// implementations is closed: *ButtonAction, *AxisAction, *VectorAction and
// *DirectionalAction.
type Action interface {
	Kind() Kind

	// pump samples b, compares with the last observed state and dispatches on
	// change. It reports the dispatched event, if any.
	pump(b Backend, name string) (Event, bool)
}

// Event describes one dispatch. Only the fields for Kind are set.
type Event struct {
	Frame uint64 `json:"frame"`
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`

	Count      int  `json:"count,omitempty"`
	Pressed    bool `json:"pressed,omitempty"`
	WasPressed bool `json:"wasPressed,omitempty"`

	Value float64 `json:"value,omitempty"`
	Delta float64 `json:"delta,omitempty"`

	Vector      Vec2 `json:"vector,omitzero"`
	VectorDelta Vec2 `json:"vectorDelta,omitzero"`
}

func (e Event) String() string {
	switch e.Kind {
	case KindButton:
		return fmt.Sprintf("%s: count=%d pressed=%t was=%t", e.Name, e.Count, e.Pressed, e.WasPressed)
	case KindAxis:
		return fmt.Sprintf("%s: %.3f (%+.3f)", e.Name, e.Value, e.Delta)
	default:
		return fmt.Sprintf("%s: %s (%s)", e.Name, e.Vector, e.VectorDelta)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for c := KindButton; c <= KindDirectional; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("%w: kind %q", ErrUnknownName, text)
}

// Lookup returns the action registered under name if it has type T.
func Lookup[T Action](r *Registry, name string) (T, bool) {
	var zero T
	a, ok := r.Get(name)
	if !ok {
		return zero, false
	}
	t, ok := a.(T)
	return t, ok
}
