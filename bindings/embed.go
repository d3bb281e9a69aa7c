package bindings

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.yaml
var defaultYAML []byte

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Default returns the built-in layout.
func Default() (*File, error) {
	return Parse(defaultYAML)
}

// LoadOrDefault reads path when it exists and falls back to the built-in
// layout otherwise.
func LoadOrDefault(path string) (*File, bool, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			f, err := Load(path)
			return f, true, err
		}
	}
	f, err := Default()
	return f, false, err
}

// ReadScript reads a script from disk relative to dir, falling back to the
// scripts bundled with the default layout.
func ReadScript(dir, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("bindings: empty script path")
	}
	path := name
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, name)
	}
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(cleanScriptPath(name))
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "bindings/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}
