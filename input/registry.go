package input

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Registry owns a set of uniquely named actions and pumps them once per frame.
//
// Pump must be driven from a single goroutine. Insert, Replace and Remove may
// be called from any goroutine; calls made while a pump is in flight (for
// example from inside a callback) are queued and applied once it finishes.
type Registry struct {
	backend   Backend
	logger    *slog.Logger
	observers []func(Event)

	mu      sync.Mutex
	actions map[string]Action
	names   []string
	pumping bool
	pending []registryOp
	frame   uint64
}

type registryOp struct {
	name    string
	action  Action
	replace bool
}

// Option configures a Registry.
type Option func(*Registry)

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver registers fn to receive every dispatched event after the
// action's own callbacks ran.
func WithObserver(fn func(Event)) Option {
	return func(r *Registry) {
		if fn != nil {
			r.observers = append(r.observers, fn)
		}
	}
}

func NewRegistry(b Backend, opts ...Option) *Registry {
	r := &Registry{
		backend: b,
		logger:  slog.Default(),
		actions: make(map[string]Action),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Backend returns the backend the registry samples.
func (r *Registry) Backend() Backend {
	return r.backend
}

// Insert registers a under name. The name must not be in use.
func (r *Registry) Insert(name string, a Action) error {
	return r.apply(registryOp{name: name, action: a})
}

// Replace registers a under name, discarding any action already there.
func (r *Registry) Replace(name string, a Action) error {
	return r.apply(registryOp{name: name, action: a, replace: true})
}

// Remove deletes the action registered under name and reports whether one
// existed. During a pump the removal is deferred.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok := r.hasLocked(name)
	if r.pumping {
		r.pending = append(r.pending, registryOp{name: name})
		r.logger.Debug("input: deferred remove", "action", name)
		return ok
	}
	r.removeLocked(name)
	return ok
}

func (r *Registry) apply(op registryOp) error {
	if op.name == "" {
		return ErrEmptyName
	}
	if op.action == nil {
		return fmt.Errorf("%w: %q", ErrNilAction, op.name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !op.replace && r.hasLocked(op.name) {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, op.name)
	}
	if r.pumping {
		r.pending = append(r.pending, op)
		r.logger.Debug("input: deferred insert", "action", op.name, "kind", op.action.Kind())
		return nil
	}
	r.putLocked(op.name, op.action)
	return nil
}

// hasLocked also accounts for queued operations so duplicate checks stay
// correct while a pump is running.
func (r *Registry) hasLocked(name string) bool {
	_, ok := r.actions[name]
	for _, op := range r.pending {
		if op.name == name {
			ok = op.action != nil
		}
	}
	return ok
}

func (r *Registry) putLocked(name string, a Action) {
	if _, ok := r.actions[name]; !ok {
		i, _ := slices.BinarySearch(r.names, name)
		r.names = slices.Insert(r.names, i, name)
	}
	r.actions[name] = a
}

func (r *Registry) removeLocked(name string) {
	if _, ok := r.actions[name]; !ok {
		return
	}
	delete(r.actions, name)
	if i, found := slices.BinarySearch(r.names, name); found {
		r.names = slices.Delete(r.names, i, i+1)
	}
}

func (r *Registry) Get(name string) (Action, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actions[name]
	return a, ok
}

// Names returns the registered names in pump order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.names)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.actions)
}

// Clear removes every action.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pumping {
		queued := slices.Clone(r.names)
		for _, op := range r.pending {
			queued = append(queued, op.name)
		}
		for _, name := range queued {
			r.pending = append(r.pending, registryOp{name: name})
		}
		return
	}
	clear(r.actions)
	r.names = nil
}

// Frame returns how many pumps have run, not counting skipped ones.
func (r *Registry) Frame() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Pump samples every action once and dispatches the ones whose state changed.
// When the window is unfocused the whole frame is skipped unless
// whileUnfocused is set.
func (r *Registry) Pump(whileUnfocused bool) {
	if !whileUnfocused && !r.backend.IsWindowFocused() {
		return
	}

	r.mu.Lock()
	if r.pumping {
		r.mu.Unlock()
		r.logger.Warn("input: nested pump ignored")
		return
	}
	r.pumping = true
	r.frame++
	frame := r.frame
	names := slices.Clone(r.names)
	actions := make([]Action, len(names))
	for i, name := range names {
		actions[i] = r.actions[name]
	}
	r.mu.Unlock()

	defer r.finishPump()

	for i, a := range actions {
		evt, ok := a.pump(r.backend, names[i])
		if !ok {
			continue
		}
		evt.Frame = frame
		r.logger.Debug("input: dispatch", "frame", frame, "action", evt.Name, "kind", evt.Kind, "event", evt.String())
		for _, obs := range r.observers {
			obs(evt)
		}
	}
}

func (r *Registry) finishPump() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pumping = false
	for _, op := range r.pending {
		if op.action == nil {
			r.removeLocked(op.name)
			continue
		}
		r.putLocked(op.name, op.action)
	}
	r.pending = nil
}
