package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("inputview", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Bindings != "bindings.yaml" || cfg.Width != 640 || cfg.Height != 480 || cfg.Deadzone != 0.2 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Listen != "" || cfg.Watch || cfg.WhileUnfocused {
		t.Fatalf("expected optional features off, got %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	data := "width: 800\nheight: 600\ntitle: from-file\nlisten: \":9000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "inputview.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("INPUTVIEW_TITLE", "from-env")
	t.Setenv("INPUTVIEW_HEIGHT", "700")

	cfg, err := Load("inputview", []string{"--height", "720", "-w"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"file", cfg.Width, 800},
		{"env_over_file", cfg.Title, "from-env"},
		{"flag_over_env", cfg.Height, 720},
		{"file_string", cfg.Listen, ":9000"},
		{"short_flag", cfg.Watch, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("expected %v, got %v", c.want, c.got)
			}
		})
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("while_unfocused: true\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load("inputview", []string{"--config", path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.WhileUnfocused || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	if _, err := Load("inputview", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"zero_width", []string{"--width", "0"}},
		{"deadzone", []string{"--deadzone", "1.5"}},
		{"level", []string{"--log_level", "loud"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			if _, err := Load("inputview", c.args); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	if err != nil || level != slog.LevelWarn {
		t.Fatalf("expected warn, got %v (%v)", level, err)
	}
}
