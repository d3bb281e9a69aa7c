// Package script runs tengo scripts in response to action dispatches.
//
// A script defines
//
//	on_change := func(ctx, name, state, delta) { ... }
//
// where ctx exposes emit(event) to raise a named game event and store, a map
// that survives between calls. Button states arrive as ints with delta the
// previous pressed flag, axis values as floats and vectors as {x, y} maps.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bufferedinput/input"
)

var ErrNoHandler = errors.New("script: on_change is not defined")

const dispatchScript = `
if __run {
	on_change(__ctx, __action, __state, __delta)
}
`

// EmitFunc receives events raised by a script through emit.
type EmitFunc func(action, event string)

// Runtime is one compiled script. It is not safe for concurrent use.
type Runtime struct {
	path     string
	compiled *tengo.Compiled
	store    *tengo.Map
	emit     EmitFunc
	logger   *slog.Logger
}

// Load reads and compiles the script at path.
func Load(path string, emit EmitFunc, logger *slog.Logger) (*Runtime, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return Compile(path, src, emit, logger)
}

// Compile builds a runtime from source. path is only used in messages.
func Compile(path string, src []byte, emit EmitFunc, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = s.Add("__run", false)
	_ = s.Add("__ctx", map[string]any{})
	_ = s.Add("__action", "")
	_ = s.Add("__state", 0)
	_ = s.Add("__delta", 0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		if strings.Contains(err.Error(), "unresolved reference 'on_change'") {
			return nil, fmt.Errorf("%w: %s", ErrNoHandler, path)
		}
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}

	rt := &Runtime{
		path:     path,
		compiled: compiled,
		store:    &tengo.Map{Value: map[string]tengo.Object{}},
		emit:     emit,
		logger:   logger,
	}

	// top-level statements run once so on_change is bound
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: init %s: %w", path, err)
	}
	return rt, nil
}

func (rt *Runtime) Path() string {
	return rt.path
}

// Run calls on_change with already converted arguments.
func (rt *Runtime) Run(action string, state, delta tengo.Object) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("script: nil runtime")
	}
	if err := rt.compiled.Set("__run", true); err != nil {
		return err
	}
	if err := rt.compiled.Set("__ctx", rt.context(action)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__action", action); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", state); err != nil {
		return err
	}
	if err := rt.compiled.Set("__delta", delta); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("script: run %s for %q: %w", rt.path, action, err)
	}
	return nil
}

func (rt *Runtime) context(action string) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"store": rt.store,
		"emit": &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 || rt.emit == nil {
				return tengo.FalseValue, nil
			}
			event := strings.TrimSpace(objectAsString(args[0]))
			if event == "" {
				return tengo.FalseValue, nil
			}
			rt.emit(action, event)
			return tengo.TrueValue, nil
		}},
	}}
}

// ButtonFunc adapts the runtime to a button callback.
func (rt *Runtime) ButtonFunc() input.ButtonFunc {
	return func(name string, state int, wasPressed bool) {
		rt.report(rt.Run(name, &tengo.Int{Value: int64(state)}, boolObject(wasPressed)))
	}
}

func (rt *Runtime) AxisFunc() input.AxisFunc {
	return func(name string, state, delta float64) {
		rt.report(rt.Run(name, &tengo.Float{Value: state}, &tengo.Float{Value: delta}))
	}
}

func (rt *Runtime) VectorFunc() input.VectorFunc {
	return func(name string, state, delta input.Vec2) {
		rt.report(rt.Run(name, vecObject(state), vecObject(delta)))
	}
}

func (rt *Runtime) report(err error) {
	if err != nil {
		rt.logger.Error("script: on_change failed", "script", rt.path, "err", err)
	}
}

func vecObject(v input.Vec2) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x": &tengo.Float{Value: v.X},
		"y": &tengo.Float{Value: v.Y},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
