package input

// Callback receives an action's name, its new state and a second value whose
// meaning depends on the action kind.
type Callback[S, D any] func(name string, state S, delta D)

type (
	// ButtonFunc receives the pressed count (1/0 for combos) and whether the
	// action was pressed before this change.
	ButtonFunc = Callback[int, bool]
	AxisFunc   = Callback[float64, float64]
	VectorFunc = Callback[Vec2, Vec2]
)

// delegate holds the callbacks connected to one action.
type delegate[S, D any] struct {
	slots []Callback[S, D]
}

func (d *delegate[S, D]) set(fn Callback[S, D]) {
	d.slots = nil
	d.add(fn)
}

func (d *delegate[S, D]) add(fn Callback[S, D]) {
	if fn == nil {
		return
	}
	d.slots = append(d.slots, fn)
}

func (d *delegate[S, D]) clear() {
	d.slots = nil
}

func (d *delegate[S, D]) call(name string, state S, delta D) {
	for _, fn := range d.slots {
		fn(name, state, delta)
	}
}
