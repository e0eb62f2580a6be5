package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "mortgage-parser/http"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mortgage calculator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return runServer(cmd.Context(), a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

func runServer(ctx context.Context, a *app) error {
	cfg := a.cfg

	if a.redis != nil {
		if err := a.redis.Ping(ctx); err != nil {
			a.logger.Warn("redis unavailable, parsed commands will not be cached", "addr", cfg.Cache.RedisAddr, "error", err)
		}
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window.Duration)
	defer rateLimiter.Stop()

	server := newHTTPServer(a, rateLimiter)

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("mortgage API listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		a.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	a.logger.Info("server exited")
	return nil
}

// newHTTPServer builds the API server from the loaded config.
func newHTTPServer(a *app, limiter *httpLayer.RateLimiter) *http.Server {
	handler := httpLayer.NewMortgageHandler(a.service, a.logger)

	return &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(handler, limiter, a.logger),
		ReadTimeout:  a.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: a.cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  a.cfg.Server.IdleTimeout.Duration,
	}
}
