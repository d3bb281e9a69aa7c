package input_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
	"github.com/milk9111/bufferedinput/input/inputtest"
)

func newVectorRig(t *testing.T, a input.Action) (*inputtest.Backend, *input.Registry) {
	t.Helper()
	b := inputtest.New()
	r := input.NewRegistry(b)
	if err := r.Insert("vec", a); err != nil {
		t.Fatalf("insert: %v", err)
	}
	return b, r
}

func TestVectorActionMousePosition(t *testing.T) {
	rec := &inputtest.Recorder[input.Vec2, input.Vec2]{}
	a := input.MousePositionAction().SetCallback(rec.Func())
	b, r := newVectorRig(t, a)

	frames := []struct {
		name     string
		x, y     float64
		dispatch bool
		delta    input.Vec2
	}{
		{"origin", 0, 0, false, input.Vec2{}},
		{"move", 100, 50, true, input.Vec2{X: 100, Y: 50}},
		{"noise", 100 + 1e-9, 50, false, input.Vec2{}},
		{"move_back", 90, 60, true, input.Vec2{X: -10, Y: 10}},
	}

	for _, f := range frames {
		b.MoveCursor(f.x, f.y)
		r.Pump(false)
		got := rec.Take()
		if !f.dispatch {
			if len(got) != 0 {
				t.Fatalf("%s: expected no dispatch, got %v", f.name, got)
			}
			continue
		}
		if len(got) != 1 {
			t.Fatalf("%s: expected one dispatch, got %v", f.name, got)
		}
		if !got[0].Delta.Equals(f.delta) {
			t.Fatalf("%s: expected delta %v, got %v", f.name, f.delta, got[0].Delta)
		}
		if !got[0].State.Equals(input.Vec2{X: f.x, Y: f.y}) {
			t.Fatalf("%s: expected state (%v,%v), got %v", f.name, f.x, f.y, got[0].State)
		}
	}
}

func TestVectorActionWheelIsNotAccumulated(t *testing.T) {
	rec := &inputtest.Recorder[input.Vec2, input.Vec2]{}
	a := input.MouseWheelVectorAction().SetCallback(rec.Func())
	b, r := newVectorRig(t, a)

	b.Scroll(1, 2)
	r.Pump(false)
	b.Frame()
	b.Scroll(1, 2)
	r.Pump(false)
	b.Frame()
	r.Pump(false)

	got := rec.Take()
	if len(got) != 2 {
		t.Fatalf("expected press and settle dispatches, got %v", got)
	}
	if !got[0].State.Equals(input.Vec2{X: 1, Y: 2}) {
		t.Fatalf("expected first state (1,2), got %v", got[0].State)
	}
	if !got[1].State.IsZero() {
		t.Fatalf("expected wheel to settle at zero, got %v", got[1].State)
	}
}

func TestVectorActionGamepadAxes(t *testing.T) {
	const (
		h = ebiten.StandardGamepadAxisLeftStickHorizontal
		v = ebiten.StandardGamepadAxisLeftStickVertical
	)
	rec := &inputtest.Recorder[input.Vec2, input.Vec2]{}
	a := input.GamepadAxesAction(h, v, 1, -1).SetCallback(rec.Func())
	b, r := newVectorRig(t, a)

	b.MoveAxis(1, h, 0.5).MoveAxis(1, v, -0.25)
	r.Pump(false)
	b.Frame()
	b.MoveAxis(1, h, 0.5)
	r.Pump(false)
	b.Frame()

	got := rec.Take()
	if len(got) != 2 {
		t.Fatalf("expected two dispatches, got %v", got)
	}
	if want := (input.Vec2{X: 1, Y: -0.25}); !a.State().Equals(want) {
		t.Fatalf("expected accumulated %v, got %v", want, a.State())
	}
	if want := (input.Vec2{X: 0.5}); !got[1].Delta.Equals(want) {
		t.Fatalf("expected delta %v, got %v", want, got[1].Delta)
	}
}

func TestGamepadAxesActionSplitGamepads(t *testing.T) {
	const axis = ebiten.StandardGamepadAxisLeftStickHorizontal
	a := input.GamepadAxesAction(axis, axis, 0, 1)
	b, r := newVectorRig(t, a)

	b.MoveAxis(0, axis, 1).MoveAxis(1, axis, -1)
	r.Pump(false)
	if want := (input.Vec2{X: 1, Y: -1}); !a.State().Equals(want) {
		t.Fatalf("expected %v, got %v", want, a.State())
	}
}

func TestVec2Equals(t *testing.T) {
	cases := []struct {
		name string
		a, b input.Vec2
		want bool
	}{
		{"identical", input.Vec2{X: 1, Y: 2}, input.Vec2{X: 1, Y: 2}, true},
		{"tiny_noise", input.Vec2{X: 1}, input.Vec2{X: 1 + 1e-9}, true},
		{"relative_large", input.Vec2{X: 1e7}, input.Vec2{X: 1e7 + 1}, true},
		{"real_change", input.Vec2{X: 1}, input.Vec2{X: 1.01}, false},
		{"y_differs", input.Vec2{}, input.Vec2{Y: -1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equals(c.b); got != c.want {
				t.Fatalf("Equals(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}
