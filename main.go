package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/milk9111/paperplane/prefabs"
	"golang.org/x/sync/errgroup"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	ticks := flag.Uint64("ticks", 3600, "stop after this many ticks (0 runs until game over)")
	seed := flag.Int64("seed", 1, "random seed for spawns and scenery")
	realtime := flag.Bool("realtime", false, "pace ticks to the wall clock")
	prefabDir := flag.String("prefabs", "prefabs", "directory searched for prefab and script overrides")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run", uuid.New())
	slog.SetDefault(logger)

	prefabs.SetRoot(*prefabDir)

	game, err := NewGame(*seed)
	if err != nil {
		slog.Error("failed to start", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if *watch {
		watcher, err := prefabs.NewWatcher(*prefabDir, filepath.Join(*prefabDir, "scripts"))
		if err != nil {
			slog.Error("failed to watch prefabs", "dir", *prefabDir, "err", err)
			os.Exit(1)
		}
		g.Go(func() error {
			return watcher.Run(gctx, game.Reload)
		})
	}
	g.Go(func() error {
		defer cancel()
		summary, err := game.Run(gctx, *ticks, *realtime)
		slog.Info("run finished",
			"ticks", summary.Ticks,
			"elapsed", summary.Elapsed,
			"kills", summary.Kills,
			"despawned", summary.Despawned,
			"health", summary.Health,
			"destroyed", summary.Destroyed,
			"parts", summary.PartsReleased,
			"game_over", summary.GameOver,
			"chunks", summary.Chunks,
			"scene", summary.Scene,
		)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
