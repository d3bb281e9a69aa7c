// Package config resolves inputview settings from flags, INPUTVIEW_*
// environment variables and an optional inputview.yaml, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "INPUTVIEW"
	FileName  = "inputview"
)

// Config holds the demo settings.
type Config struct {
	Bindings       string  `mapstructure:"bindings"`
	Listen         string  `mapstructure:"listen"`
	WhileUnfocused bool    `mapstructure:"while_unfocused"`
	LogLevel       string  `mapstructure:"log_level"`
	Width          int     `mapstructure:"width"`
	Height         int     `mapstructure:"height"`
	Title          string  `mapstructure:"title"`
	Watch          bool    `mapstructure:"watch"`
	Deadzone       float64 `mapstructure:"deadzone"`
	MaxEvents      int     `mapstructure:"max_events"`
}

// Flags returns the command-line flag set. Its names match the config keys.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (default ./inputview.yaml when present)")
	fs.StringP("bindings", "b", "bindings.yaml", "bindings file; the built-in layout is used when it does not exist")
	fs.StringP("listen", "l", "", "serve the event stream on this address, e.g. :8080")
	fs.Bool("while_unfocused", false, "keep pumping input while the window is unfocused")
	fs.String("log_level", "info", "debug, info, warn or error")
	fs.Int("width", 640, "window width")
	fs.Int("height", 480, "window height")
	fs.String("title", "inputview", "window title")
	fs.BoolP("watch", "w", false, "reload bindings and scripts when they change on disk")
	fs.Float64("deadzone", 0.2, "gamepad stick deadzone")
	fs.Int("max_events", 16, "number of recent dispatches shown on screen")
	return fs
}

// Load parses args and merges every source.
func Load(name string, args []string) (*Config, error) {
	fs := Flags(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d", c.Width, c.Height))
	}
	if c.Deadzone < 0 || c.Deadzone >= 1 {
		errs = append(errs, fmt.Errorf("config: deadzone %v outside [0, 1)", c.Deadzone))
	}
	if c.MaxEvents < 0 {
		errs = append(errs, fmt.Errorf("config: max_events %d", c.MaxEvents))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return level, nil
}
