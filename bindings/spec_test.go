package bindings

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
)

func TestParseControls(t *testing.T) {
	f, err := Parse([]byte(`
actions:
  jump:
    controls: key:Space
  fire:
    controls: [mouse:Left, pad1:RightBottom]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := f.Actions["jump"].Controls; len(got) != 1 || got[0] != input.Key(ebiten.KeySpace) {
		t.Fatalf("unexpected jump controls %v", got)
	}
	want := []input.Control{input.MouseButton(ebiten.MouseButtonLeft), input.GamepadButton(ebiten.StandardGamepadButtonRightBottom, 1)}
	got := f.Actions["fire"].Controls
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("control %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseRejectsUnknownControl(t *testing.T) {
	_, err := Parse([]byte(`
actions:
  jump:
    controls: [key:NotAKey]
`))
	if !errors.Is(err, input.ErrUnknownName) {
		t.Fatalf("expected ErrUnknownName, got %v", err)
	}
}

func TestBuildKinds(t *testing.T) {
	no := false
	cases := []struct {
		name string
		spec ActionSpec
		kind input.Kind
	}{
		{"button", ActionSpec{Controls: Controls{input.Key(ebiten.KeyA)}}, input.KindButton},
		{"combo", ActionSpec{Type: "combo", Controls: Controls{input.Key(ebiten.KeyA), input.Key(ebiten.KeyB)}}, input.KindButton},
		{"wheel_axis", ActionSpec{Type: "axis", Source: "wheel"}, input.KindAxis},
		{"pad_axis", ActionSpec{Type: "axis", Axis: "LeftStickVertical", Gamepad: 2}, input.KindAxis},
		{"cursor", ActionSpec{Type: "vector", Source: "cursor"}, input.KindVector},
		{"sticks", ActionSpec{Type: "vector", Horizontal: "LeftStickHorizontal", Vertical: "LeftStickVertical"}, input.KindVector},
		{"wasd", ActionSpec{Type: "wasd", Normalize: &no}, input.KindDirectional},
		{"directional", ActionSpec{Type: "directional", Directions: map[string]Controls{
			"up":      {input.Key(ebiten.KeyI)},
			"up_left": {input.Key(ebiten.KeyU)},
		}}, input.KindDirectional},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := c.spec.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if a.Kind() != c.kind {
				t.Fatalf("expected kind %v, got %v", c.kind, a.Kind())
			}
		})
	}
}

func TestBuildComboFlag(t *testing.T) {
	a, err := ActionSpec{Type: "combo", Controls: Controls{input.Key(ebiten.KeyA)}}.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !a.(*input.ButtonAction).Combo() {
		t.Fatalf("expected a combo action")
	}
}

func TestBuildDirectionalDiagonal(t *testing.T) {
	a, err := ActionSpec{Type: "directional", Normalize: new(bool), Directions: map[string]Controls{
		"Down_Right": {input.Key(ebiten.KeyN)},
	}}.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	d := a.(*input.DirectionalAction)
	if !d.Controls(input.DownRight).Contains(input.Key(ebiten.KeyN)) {
		t.Fatalf("diagonal not bound: %v", d.Controls(input.DownRight))
	}
	if d.Normalize() {
		t.Fatalf("expected normalize=false")
	}
}

func TestBuildReportsEveryError(t *testing.T) {
	f := &File{Actions: map[string]ActionSpec{
		"ok":      {Controls: Controls{input.Key(ebiten.KeyA)}},
		"empty":   {Type: "button"},
		"mystery": {Type: "teleport"},
		"axis":    {Type: "axis", Axis: "Sideways"},
	}}
	_, err := f.Build()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrInvalid) || !errors.Is(err, ErrUnknownType) || !errors.Is(err, input.ErrUnknownName) {
		t.Fatalf("expected all three failures joined, got %v", err)
	}
}

func TestDefaultLayoutBuilds(t *testing.T) {
	f, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	actions, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, name := range []string{"move", "jump", "save", "zoom", "aim", "stick", "dpad"} {
		if _, ok := actions[name]; !ok {
			t.Fatalf("default layout lacks %q", name)
		}
	}
}
