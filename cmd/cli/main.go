package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MaximeSarrato/crafty/config"
	"github.com/MaximeSarrato/crafty/internal/adapters/primary/cli"
	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/clock"
	"github.com/MaximeSarrato/crafty/internal/core/services"
	"github.com/MaximeSarrato/crafty/internal/wiring"
	"github.com/MaximeSarrato/crafty/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run keeps deferred closes ahead of os.Exit.
func run() int {
	cfg, err := config.LoadWithDefaults(map[string]string{
		"MESSAGE_STORE":  config.StoreBadger,
		"FOLLOWEE_STORE": config.StoreBadger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitError
	}

	// stdout belongs to the command output.
	level := slog.LevelWarn
	if cfg.Env == "local" && os.Getenv("CRAFTY_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger.InitWithWriter(cfg.Env, os.Stderr, logger.WithLevel(level))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra, err := wiring.Build(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return cli.ExitError
	}
	defer func() { _ = infra.Close() }()

	dates := clock.NewRealDateProvider()
	deps := cli.Deps{
		Poster:   services.NewPostMessageUseCase(infra.Messages, dates, infra.Publisher),
		Editor:   services.NewEditMessageUseCase(infra.Messages, infra.Publisher),
		Follower: services.NewFollowUserUseCase(infra.Followees, infra.Publisher),
		Timeline: services.NewViewTimelineUseCase(infra.Messages),
		Wall:     services.NewViewWallUseCase(infra.Messages, infra.Followees),
		Clock:    dates,
	}
	return cli.Run(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
}
