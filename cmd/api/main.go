package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MaximeSarrato/crafty/config"
	httpadapter "github.com/MaximeSarrato/crafty/internal/adapters/primary/http"
	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/clock"
	"github.com/MaximeSarrato/crafty/internal/core/services"
	"github.com/MaximeSarrato/crafty/internal/wiring"
	"github.com/MaximeSarrato/crafty/pkg/logger"
	"github.com/MaximeSarrato/crafty/pkg/telemetry"
)

func main() {
	// 1. Config & Logger
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(cfg.Env)
	slog.Info("🚀 Starting crafty API", "env", cfg.Env, "message_store", cfg.MessageStore, "followee_store", cfg.FolloweeStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Tracing
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Env, cfg.OtelEndpoint)
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }()
	}

	// 3. Driven adapters
	infra, err := wiring.Build(ctx, cfg)
	if err != nil {
		slog.Error("Unable to build infrastructure", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := infra.Close(); err != nil {
			slog.Error("Failed to close infrastructure", "error", err)
		}
	}()

	// 4. Use cases
	dates := clock.NewRealDateProvider()
	handler := httpadapter.NewHandler(httpadapter.Deps{
		Poster:   services.NewPostMessageUseCase(infra.Messages, dates, infra.Publisher),
		Editor:   services.NewEditMessageUseCase(infra.Messages, infra.Publisher),
		Follower: services.NewFollowUserUseCase(infra.Followees, infra.Publisher),
		Timeline: services.NewViewTimelineUseCase(infra.Messages),
		Wall:     services.NewViewWallUseCase(infra.Messages, infra.Followees),
	})

	// 5. HTTP (otelhttp at the root)
	var h http.Handler = handler.NewRouter(nil)
	h = otelhttp.NewHandler(h, cfg.ServiceName, otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
		return fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path)
	}))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("📡 API listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		slog.Error("HTTP server error", "error", err)
	}
	slog.Info("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("👋 Server exited")
}
