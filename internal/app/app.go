package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/piped-embed/server/internal/config"
	"github.com/piped-embed/server/internal/handlers"
	"github.com/piped-embed/server/internal/httpserver"
	"github.com/piped-embed/server/internal/logging"
	"github.com/piped-embed/server/internal/middleware"
)

// Run bootstraps the embed service. With no arguments it serves HTTP.
func Run(ctx context.Context, args []string) error {
	command := "serve"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "serve":
		return serve(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     logging.ParseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	srv := httpserver.New(config.ListenAddr, newHandler(cfg, logger), cfg.BackendTimeout+5*time.Second)

	logger.Info("starting http server",
		"addr", srv.Addr(),
		"frontend_url", cfg.FrontendURL,
		"backend_url", cfg.BackendURL,
	)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalCh)

	select {
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	case sig := <-signalCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newHandler assembles the router and middleware for cfg.
func newHandler(cfg config.Config, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	handlers.RegisterRoutes(router, buildDependencies(cfg))
	return router
}
