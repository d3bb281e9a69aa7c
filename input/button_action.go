package input

// ButtonAction tracks how many controls of a set are held.
//
// In combo mode the set acts as a single chord that is pressed only while every
// member is held, and the callback receives 1 or 0. Otherwise the callback
// receives the raw count whenever it changes.
type ButtonAction struct {
	controls ControlSet
	combo    bool
	last     int
	callback delegate[int, bool]
}

func NewButtonAction(controls ControlSet, combo bool) *ButtonAction {
	return &ButtonAction{controls: controls, combo: combo}
}

func (a *ButtonAction) Kind() Kind { return KindButton }

func (a *ButtonAction) Controls() ControlSet { return a.controls }

func (a *ButtonAction) Combo() bool { return a.combo }

// State returns the last observed pressed count.
func (a *ButtonAction) State() int { return a.last }

// Pressed reports whether the action counts as held: every control for a
// combo, any control otherwise.
func (a *ButtonAction) Pressed() bool {
	if a.combo {
		return a.controls.Len() > 0 && a.last == a.controls.Len()
	}
	return a.last > 0
}

// SetCallback replaces every connected callback with fn.
func (a *ButtonAction) SetCallback(fn ButtonFunc) *ButtonAction {
	a.callback.set(fn)
	return a
}

// AddCallback connects fn alongside the existing callbacks.
func (a *ButtonAction) AddCallback(fn ButtonFunc) *ButtonAction {
	a.callback.add(fn)
	return a
}

func (a *ButtonAction) ClearCallbacks() *ButtonAction {
	a.callback.clear()
	return a
}

func (a *ButtonAction) pump(b Backend, name string) (Event, bool) {
	state := IsSetPressed(b, a.controls)
	if state == a.last {
		return Event{}, false
	}
	last := a.last
	// intermediate counts are recorded even when a combo does not dispatch
	defer func() { a.last = state }()

	if !a.combo {
		a.callback.call(name, state, last > 0)
		return Event{Name: name, Kind: KindButton, Count: state, Pressed: state > 0, WasPressed: last > 0}, true
	}

	full := a.controls.Len()
	pressed, wasPressed := state == full, last == full
	if pressed == wasPressed {
		return Event{}, false
	}
	count := 0
	if pressed {
		count = 1
	}
	a.callback.call(name, count, wasPressed)
	return Event{Name: name, Kind: KindButton, Count: count, Pressed: pressed, WasPressed: wasPressed}, true
}
