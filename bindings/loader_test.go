package bindings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/input"
	"github.com/milk9111/bufferedinput/input/inputtest"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoaderAttachesHandlersAndScripts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "press.tengo"), `
on_change := func(ctx, name, state, delta) {
	if state == 1 {
		ctx.emit("pressed")
	}
}
`)
	writeFile(t, filepath.Join(dir, "bindings.yaml"), `
actions:
  jump:
    controls: [key:Space]
    script: press.tengo
  zoom:
    type: axis
    source: wheel
`)

	jumps := &inputtest.Recorder[int, bool]{}
	zooms := &inputtest.Recorder[float64, float64]{}
	var emitted []string
	l := &Loader{
		Dir: dir,
		Handlers: Handlers{
			Button: map[string]input.ButtonFunc{"jump": jumps.Func(), "missing": jumps.Func()},
			Axis:   map[string]input.AxisFunc{"zoom": zooms.Func()},
		},
		Emit: func(action, event string) { emitted = append(emitted, action+"/"+event) },
	}

	b := inputtest.New()
	r := input.NewRegistry(b)
	if _, err := l.LoadFile(r, filepath.Join(dir, "bindings.yaml")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if names := r.Names(); len(names) != 2 || names[0] != "jump" || names[1] != "zoom" {
		t.Fatalf("unexpected names %v", names)
	}

	b.Hold(input.Key(ebiten.KeySpace)).Scroll(0, 2)
	r.Pump(false)

	if got := jumps.Take(); len(got) != 1 || got[0] != (inputtest.Call[int, bool]{Name: "jump", State: 1}) {
		t.Fatalf("unexpected jump calls %v", got)
	}
	if got := zooms.Take(); len(got) != 1 || got[0].State != 2 {
		t.Fatalf("unexpected zoom calls %v", got)
	}
	if len(emitted) != 1 || emitted[0] != "jump/pressed" {
		t.Fatalf("unexpected script events %v", emitted)
	}
}

func TestLoaderKeepsRegistryOnError(t *testing.T) {
	b := inputtest.New()
	r := input.NewRegistry(b)
	if err := r.Insert("old", input.KeyAction(ebiten.KeyQ, false)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	cases := []struct {
		name string
		yaml string
	}{
		{"bad_action", "actions:\n  jump:\n    type: button\n"},
		{"missing_script", "actions:\n  jump:\n    controls: key:Space\n    script: nowhere.tengo\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse([]byte(c.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			l := &Loader{Dir: t.TempDir()}
			if err := l.Apply(r, f); err == nil {
				t.Fatalf("expected error")
			}
			if names := r.Names(); len(names) != 1 || names[0] != "old" {
				t.Fatalf("registry changed: %v", names)
			}
		})
	}
}

func TestLoaderFallsBackToDefault(t *testing.T) {
	r := input.NewRegistry(inputtest.New())
	l := &Loader{}
	f, err := l.LoadFile(r, filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Len() != len(f.Actions) {
		t.Fatalf("expected %d actions, got %d", len(f.Actions), r.Len())
	}
}

func TestReadScriptFallsBackToEmbedded(t *testing.T) {
	data, err := ReadScript(t.TempDir(), "scripts/double_tap.tengo")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected embedded script contents")
	}
}

type resettingBackend struct {
	*inputtest.Backend
	resets int
}

func (b *resettingBackend) ResetAxes() { b.resets++ }

func TestLoaderResetsAxisTracking(t *testing.T) {
	f, err := Parse([]byte("actions:\n  stick:\n    type: vector\n    horizontal: LeftStickHorizontal\n    vertical: LeftStickVertical\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b := &resettingBackend{Backend: inputtest.New()}
	r := input.NewRegistry(b)
	l := &Loader{}

	for i := 1; i <= 2; i++ {
		if err := l.Apply(r, f); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
		if b.resets != i {
			t.Fatalf("apply %d: expected %d axis resets, got %d", i, i, b.resets)
		}
	}

	bad, err := Parse([]byte("actions:\n  stick:\n    type: vector\n    horizontal: Sideways\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := l.Apply(r, bad); err == nil {
		t.Fatalf("expected error")
	}
	if b.resets != 2 {
		t.Fatalf("a failed apply must not reset tracking, got %d resets", b.resets)
	}
}
