package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/bufferedinput/backend"
	"github.com/milk9111/bufferedinput/bindings"
	"github.com/milk9111/bufferedinput/config"
	"github.com/milk9111/bufferedinput/input"
)

type game struct {
	cfg      *config.Config
	logger   *slog.Logger
	backend  *backend.Ebiten
	registry *input.Registry
	loader   *bindings.Loader
	watcher  *bindings.Watcher

	whileUnfocused bool
	recent         *ring
	quit           bool
	reloadErr      error
}

func (g *game) reload() error {
	f, err := g.loader.LoadFile(g.registry, g.cfg.Bindings)
	if err != nil {
		return err
	}
	g.whileUnfocused = g.cfg.WhileUnfocused || f.WhileUnfocused
	return nil
}

func (g *game) observe(evt input.Event) {
	g.recent.push(fmt.Sprintf("%6d %s", evt.Frame, evt))
}

func (g *game) Update() error {
	if g.watcher != nil {
		if changed := g.watcher.Drain(); len(changed) > 0 {
			g.logger.Info("inputview: reloading bindings", "changed", changed)
			// a broken edit keeps the previous layout active
			g.reloadErr = g.reload()
			if g.reloadErr != nil {
				g.logger.Error("inputview: reload failed", "err", g.reloadErr)
			}
		}
		select {
		case err, ok := <-g.watcher.Errors():
			if ok {
				g.logger.Warn("inputview: watch error", "err", err)
			}
		default:
		}
	}

	g.backend.Update()
	g.registry.Pump(g.whileUnfocused)

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})

	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %d  gamepads %v  focused %t\n", g.registry.Frame(), g.backend.Gamepads(), g.backend.IsWindowFocused())
	if g.reloadErr != nil {
		fmt.Fprintf(&sb, "reload failed: %v\n", g.reloadErr)
	}
	sb.WriteString("\n")
	for _, name := range g.registry.Names() {
		a, ok := g.registry.Get(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%-10s %s\n", name, describe(a))
	}
	sb.WriteString("\nrecent:\n")
	for _, line := range g.recent.lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	ebitenutil.DebugPrint(screen, sb.String())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func describe(a input.Action) string {
	switch a := a.(type) {
	case *input.ButtonAction:
		return fmt.Sprintf("%-11s %d %s", a.Kind(), a.State(), a.Controls())
	case *input.AxisAction:
		return fmt.Sprintf("%-11s %+.3f %s", a.Kind(), a.State(), a.Source())
	case *input.VectorAction:
		return fmt.Sprintf("%-11s %s", a.Kind(), a.State())
	case *input.DirectionalAction:
		return fmt.Sprintf("%-11s %s", a.Kind(), a.State())
	default:
		return a.Kind().String()
	}
}
