package bindings

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/bufferedinput/input"
	"github.com/milk9111/bufferedinput/script"
)

// Handlers are the application callbacks attached to actions by name after
// a layout is applied. Handlers for names the layout lacks are ignored.
type Handlers struct {
	Button map[string]input.ButtonFunc
	Axis   map[string]input.AxisFunc
	Vector map[string]input.VectorFunc
}

// AxisResetter is implemented by backends that derive axis movement from
// absolute positions. Apply resets them so the rebuilt actions track the
// sticks from their current position.
type AxisResetter interface {
	ResetAxes()
}

// Loader applies layouts to a registry.
type Loader struct {
	Handlers Handlers
	// Dir resolves relative script paths, usually the bindings file's dir.
	Dir    string
	Emit   script.EmitFunc
	Logger *slog.Logger
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// Apply replaces the registry contents with the actions of f. If any action
// or script fails to build the registry is left untouched.
func (l *Loader) Apply(r *input.Registry, f *File) error {
	actions, err := f.Build()
	if err != nil {
		return err
	}

	scripts := map[string]*script.Runtime{}
	var errs []error
	for _, name := range f.Names() {
		path := f.Actions[name].Script
		if path == "" {
			continue
		}
		src, err := ReadScript(l.Dir, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", name, err))
			continue
		}
		rt, err := script.Compile(path, src, l.Emit, l.logger())
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", name, err))
			continue
		}
		scripts[name] = rt
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	r.Clear()
	// new axis actions start at 0, so tracked stick positions must too
	if rs, ok := r.Backend().(AxisResetter); ok {
		rs.ResetAxes()
	}
	for _, name := range f.Names() {
		a := actions[name]
		l.attach(name, a, scripts[name])
		if err := r.Insert(name, a); err != nil {
			errs = append(errs, err)
		}
	}
	l.logger().Info("bindings: applied", "actions", len(actions), "scripts", len(scripts))
	return errors.Join(errs...)
}

func (l *Loader) attach(name string, a input.Action, rt *script.Runtime) {
	switch a := a.(type) {
	case *input.ButtonAction:
		if fn, ok := l.Handlers.Button[name]; ok {
			a.AddCallback(fn)
		}
		if rt != nil {
			a.AddCallback(rt.ButtonFunc())
		}
	case *input.AxisAction:
		if fn, ok := l.Handlers.Axis[name]; ok {
			a.AddCallback(fn)
		}
		if rt != nil {
			a.AddCallback(rt.AxisFunc())
		}
	case *input.VectorAction:
		if fn, ok := l.Handlers.Vector[name]; ok {
			a.AddCallback(fn)
		}
		if rt != nil {
			a.AddCallback(rt.VectorFunc())
		}
	case *input.DirectionalAction:
		if fn, ok := l.Handlers.Vector[name]; ok {
			a.AddCallback(fn)
		}
		if rt != nil {
			a.AddCallback(rt.VectorFunc())
		}
	}
}

// LoadFile reads path (or the built-in layout when path is missing) and
// applies it.
func (l *Loader) LoadFile(r *input.Registry, path string) (*File, error) {
	f, fromDisk, err := LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if !fromDisk {
		l.logger().Info("bindings: using built-in layout", "path", path)
	}
	if err := l.Apply(r, f); err != nil {
		return nil, err
	}
	return f, nil
}
