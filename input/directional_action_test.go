package input_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
	"github.com/milk9111/bufferedinput/input/inputtest"
)

func TestCompose(t *testing.T) {
	cases := []struct {
		name      string
		counts    input.Counts
		normalize bool
		want      input.Vec2
	}{
		{"idle", input.Counts{}, true, input.Vec2{}},
		{"right", input.Counts{input.Right: 1}, true, input.Vec2{X: -1}},
		{"left", input.Counts{input.Left: 1}, true, input.Vec2{X: 1}},
		{"left_twice_normalized", input.Counts{input.Left: 2}, true, input.Vec2{X: 1}},
		{"left_twice_summed", input.Counts{input.Left: 2}, false, input.Vec2{X: 2}},
		{"up_right", input.Counts{input.Up: 1, input.Right: 1}, true, input.Vec2{X: -1, Y: 1}},
		{"opposites_cancel", input.Counts{input.Up: 1, input.Down: 1}, true, input.Vec2{}},
		{"diagonal", input.Counts{input.DownLeft: 1}, true, input.Vec2{X: 1, Y: -1}},
		{"diagonal_and_cardinal_normalized", input.Counts{input.DownLeft: 1, input.Left: 1}, true, input.Vec2{X: 1, Y: -1}},
		{"diagonal_and_cardinal_summed", input.Counts{input.DownLeft: 1, input.Left: 1}, false, input.Vec2{X: 2, Y: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := input.Compose(c.counts, c.normalize); got != c.want {
				t.Fatalf("Compose = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDirectionalActionNormalize(t *testing.T) {
	left := input.NewControlSet(input.Key(ebiten.KeyA), input.Key(ebiten.KeyArrowLeft))
	empty := input.NewControlSet()

	cases := []struct {
		name      string
		normalize bool
		wantX     float64
	}{
		{"normalized", true, 1},
		{"summed", false, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := inputtest.New()
			r := input.NewRegistry(b)
			rec := &inputtest.Recorder[input.Vec2, input.Vec2]{}
			a := input.QuadAction(empty, empty, left, empty, c.normalize).SetCallback(rec.Func())
			if err := r.Insert("move", a); err != nil {
				t.Fatalf("insert: %v", err)
			}

			b.Hold(left.Controls()...)
			r.Pump(false)
			got := rec.Take()
			if len(got) != 1 {
				t.Fatalf("expected one dispatch, got %v", got)
			}
			if got[0].State.X != c.wantX || got[0].State.Y != 0 {
				t.Fatalf("expected x=%v, got %v", c.wantX, got[0].State)
			}
		})
	}
}

func TestWASDAction(t *testing.T) {
	b := inputtest.New()
	r := input.NewRegistry(b)
	rec := &inputtest.Recorder[input.Vec2, input.Vec2]{}
	a := input.WASDAction(true).SetCallback(rec.Func())
	if err := r.Insert("move", a); err != nil {
		t.Fatalf("insert: %v", err)
	}

	steps := []struct {
		name  string
		held  []ebiten.Key
		state input.Vec2
		delta input.Vec2
		fires bool
	}{
		{"w", []ebiten.Key{ebiten.KeyW}, input.Vec2{Y: 1}, input.Vec2{Y: 1}, true},
		{"w_and_up_arrow", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, input.Vec2{Y: 1}, input.Vec2{}, false},
		{"w_and_d", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, input.Vec2{X: -1, Y: 1}, input.Vec2{X: -1}, true},
		{"s_and_a", []ebiten.Key{ebiten.KeyS, ebiten.KeyA}, input.Vec2{X: 1, Y: -1}, input.Vec2{X: 2, Y: -2}, true},
		{"release", nil, input.Vec2{}, input.Vec2{X: -1, Y: 1}, true},
	}

	for _, s := range steps {
		b.ReleaseAll()
		for _, k := range s.held {
			b.Hold(input.Key(k))
		}
		r.Pump(false)
		got := rec.Take()
		if !s.fires {
			if len(got) != 0 {
				t.Fatalf("%s: expected no dispatch, got %v", s.name, got)
			}
		} else {
			if len(got) != 1 {
				t.Fatalf("%s: expected one dispatch, got %v", s.name, got)
			}
			if got[0].Delta != s.delta {
				t.Fatalf("%s: expected delta %v, got %v", s.name, s.delta, got[0].Delta)
			}
		}
		if a.State() != s.state {
			t.Fatalf("%s: expected state %v, got %v", s.name, s.state, a.State())
		}
	}
}

func TestDirectionalActionDiagonal(t *testing.T) {
	b := inputtest.New()
	r := input.NewRegistry(b)
	empty := input.NewControlSet()
	q := input.Key(ebiten.KeyQ)
	a := input.QuadAction(empty, empty, empty, empty, true).
		WithDiagonal(input.UpLeft, input.NewControlSet(q)).
		WithDiagonal(input.Up, input.NewControlSet(input.Key(ebiten.KeyE)))
	if err := r.Insert("move", a); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a.Controls(input.Up).Len() != 0 {
		t.Fatalf("WithDiagonal must not rebind cardinal directions")
	}

	b.Hold(q)
	r.Pump(false)
	if want := (input.Vec2{X: 1, Y: 1}); a.State() != want {
		t.Fatalf("expected %v, got %v", want, a.State())
	}
}

func TestParseDirection(t *testing.T) {
	for d := input.Up; d <= input.DownRight; d++ {
		got, err := input.ParseDirection(d.String())
		if err != nil || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := input.ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
