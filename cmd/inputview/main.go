// Command inputview shows every action of a bindings file reacting to live
// input, and optionally streams the dispatches to WebSocket clients.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bufferedinput/backend"
	"github.com/milk9111/bufferedinput/bindings"
	"github.com/milk9111/bufferedinput/config"
	"github.com/milk9111/bufferedinput/hub"
	"github.com/milk9111/bufferedinput/input"
)

func main() {
	cfg, err := config.Load(filepath.Base(os.Args[0]), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var broadcaster *hub.Broadcaster
	var srv *hub.Server
	if cfg.Listen != "" {
		h := hub.NewHub(logger)
		broadcaster = hub.NewBroadcaster(h)
		go h.Run(ctx)
		go broadcaster.Run(ctx)
		srv = hub.NewServer(h, broadcaster, cfg.Listen)
		if _, err := srv.Start(); err != nil {
			log.Fatal(err)
		}
	}

	g, err := newGame(cfg, logger, broadcaster)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("inputview: shutdown", "err", err)
		}
	}
}

// quitAction is bound to the quit button handler.
const quitAction = "quit"

func newGame(cfg *config.Config, logger *slog.Logger, broadcaster *hub.Broadcaster) (*game, error) {
	g := &game{
		cfg:     cfg,
		logger:  logger,
		backend: backend.NewEbiten(backend.WithDeadzone(cfg.Deadzone), backend.WithLogger(logger)),
		recent:  newRing(cfg.MaxEvents),
	}

	observers := []input.Option{input.WithLogger(logger), input.WithObserver(g.observe)}
	if broadcaster != nil {
		observers = append(observers, input.WithObserver(broadcaster.Publish))
	}
	g.registry = input.NewRegistry(g.backend, observers...)

	g.loader = &bindings.Loader{
		Dir:    filepath.Dir(cfg.Bindings),
		Logger: logger,
		Emit: func(action, event string) {
			g.recent.push("! " + action + " -> " + event)
			if broadcaster != nil {
				broadcaster.Emit(action, event)
			}
		},
		Handlers: bindings.Handlers{
			Button: map[string]input.ButtonFunc{
				quitAction: func(_ string, state int, _ bool) {
					if state > 0 {
						g.quit = true
					}
				},
			},
		},
	}

	if err := g.reload(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		if _, err := os.Stat(cfg.Bindings); err != nil {
			logger.Warn("inputview: not watching, bindings file missing", "path", cfg.Bindings)
		} else {
			w, err := bindings.NewWatcher(g.loader.Dir)
			if err != nil {
				return nil, err
			}
			g.watcher = w
		}
	}
	return g, nil
}
