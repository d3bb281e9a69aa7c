// Package bindings loads action layouts from YAML and registers them.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType = errors.New("bindings: unknown action type")
	ErrInvalid     = errors.New("bindings: invalid action")
)

// File is a bindings document.
type File struct {
	// WhileUnfocused keeps pumping when the window loses focus.
	WhileUnfocused bool                  `yaml:"while_unfocused"`
	Actions        map[string]ActionSpec `yaml:"actions"`
}

// ActionSpec describes one action. Which fields apply depends on Type:
//
//	button       controls, combo
//	combo        controls
//	axis         source (wheel|gamepad), axis, gamepad
//	vector       source (wheel|cursor|gamepad), horizontal, vertical, gamepad, vertical_gamepad
//	directional  directions, normalize
//	wasd         normalize
type ActionSpec struct {
	Type            string              `yaml:"type"`
	Controls        Controls            `yaml:"controls"`
	Combo           bool                `yaml:"combo"`
	Source          string              `yaml:"source"`
	Axis            string              `yaml:"axis"`
	Horizontal      string              `yaml:"horizontal"`
	Vertical        string              `yaml:"vertical"`
	Gamepad         int                 `yaml:"gamepad"`
	VerticalGamepad *int                `yaml:"vertical_gamepad"`
	Normalize       *bool               `yaml:"normalize"`
	Directions      map[string]Controls `yaml:"directions"`
	Script          string              `yaml:"script"`
}

// Controls is a list of controls written as "key:W", "mouse:Left" or
// "pad1:RightBottom". A single string is accepted in place of a list.
type Controls []input.Control

func (c *Controls) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	switch value.Kind {
	case yaml.ScalarNode:
		names = []string{value.Value}
	case yaml.SequenceNode:
		if err := value.Decode(&names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("bindings: line %d: controls must be a string or a list", value.Line)
	}

	out := make(Controls, 0, len(names))
	for _, name := range names {
		ctrl, err := input.ParseControl(name)
		if err != nil {
			return fmt.Errorf("bindings: line %d: %w", value.Line, err)
		}
		out = append(out, ctrl)
	}
	*c = out
	return nil
}

func (c Controls) Set() input.ControlSet {
	return input.NewControlSet(c...)
}

// Parse decodes a bindings document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bindings: unmarshal: %w", err)
	}
	return &f, nil
}

// Load reads a bindings document from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindings: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("bindings: %s: %w", path, err)
	}
	return f, nil
}

// Names returns the action names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Actions))
	for name := range f.Actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build constructs every action. All invalid specs are reported together.
func (f *File) Build() (map[string]input.Action, error) {
	out := make(map[string]input.Action, len(f.Actions))
	var errs []error
	for _, name := range f.Names() {
		a, err := f.Actions[name].Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", name, err))
			continue
		}
		out[name] = a
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Build constructs the action described by s.
func (s ActionSpec) Build() (input.Action, error) {
	switch strings.ToLower(s.Type) {
	case "button", "":
		if len(s.Controls) == 0 {
			return nil, fmt.Errorf("%w: button needs controls", ErrInvalid)
		}
		return input.ButtonSetAction(s.Controls.Set(), s.Combo), nil
	case "combo":
		if len(s.Controls) == 0 {
			return nil, fmt.Errorf("%w: combo needs controls", ErrInvalid)
		}
		return input.ComboAction(s.Controls...), nil
	case "axis":
		return s.buildAxis()
	case "vector":
		return s.buildVector()
	case "directional":
		return s.buildDirectional()
	case "wasd":
		return input.WASDAction(s.normalize()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
}

func (s ActionSpec) buildAxis() (input.Action, error) {
	switch strings.ToLower(s.Source) {
	case "wheel":
		return input.MouseWheelAction(), nil
	case "gamepad", "":
		axis, err := input.ParseGamepadAxis(s.Axis)
		if err != nil {
			return nil, err
		}
		if s.Gamepad < 0 {
			return nil, fmt.Errorf("%w: negative gamepad %d", ErrInvalid, s.Gamepad)
		}
		return input.GamepadAxisAction(axis, ebiten.GamepadID(s.Gamepad)), nil
	default:
		return nil, fmt.Errorf("%w: axis source %q", ErrInvalid, s.Source)
	}
}

func (s ActionSpec) buildVector() (input.Action, error) {
	switch strings.ToLower(s.Source) {
	case "wheel":
		return input.MouseWheelVectorAction(), nil
	case "cursor", "mouse":
		return input.MousePositionAction(), nil
	case "gamepad", "":
		h, err := input.ParseGamepadAxis(s.Horizontal)
		if err != nil {
			return nil, err
		}
		v, err := input.ParseGamepadAxis(s.Vertical)
		if err != nil {
			return nil, err
		}
		if s.Gamepad < 0 {
			return nil, fmt.Errorf("%w: negative gamepad %d", ErrInvalid, s.Gamepad)
		}
		vertical := -1
		if s.VerticalGamepad != nil {
			vertical = *s.VerticalGamepad
		}
		return input.GamepadAxesAction(h, v, ebiten.GamepadID(s.Gamepad), ebiten.GamepadID(vertical)), nil
	default:
		return nil, fmt.Errorf("%w: vector source %q", ErrInvalid, s.Source)
	}
}

func (s ActionSpec) buildDirectional() (input.Action, error) {
	if len(s.Directions) == 0 {
		return nil, fmt.Errorf("%w: directional needs directions", ErrInvalid)
	}
	var sets [8]input.ControlSet
	for name, controls := range s.Directions {
		d, err := input.ParseDirection(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		sets[d] = controls.Set()
	}
	a := input.QuadAction(sets[input.Up], sets[input.Down], sets[input.Left], sets[input.Right], s.normalize())
	for _, d := range []input.Direction{input.UpLeft, input.UpRight, input.DownLeft, input.DownRight} {
		if sets[d].Len() > 0 {
			a.WithDiagonal(d, sets[d])
		}
	}
	return a, nil
}

func (s ActionSpec) normalize() bool {
	if s.Normalize == nil {
		return true
	}
	return *s.Normalize
}
