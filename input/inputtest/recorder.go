package inputtest

import "github.com/milk9111/bufferedinput/input"

// Call is one recorded callback invocation.
type Call[S, D any] struct {
	Name  string
	State S
	Delta D
}

// Recorder collects callback invocations for later assertions.
type Recorder[S, D any] struct {
	Calls []Call[S, D]
}

// Func returns a callback that appends to r.
func (r *Recorder[S, D]) Func() input.Callback[S, D] {
	return func(name string, state S, delta D) {
		r.Calls = append(r.Calls, Call[S, D]{Name: name, State: state, Delta: delta})
	}
}

// Take returns the recorded calls and resets the recorder.
func (r *Recorder[S, D]) Take() []Call[S, D] {
	out := r.Calls
	r.Calls = nil
	return out
}
