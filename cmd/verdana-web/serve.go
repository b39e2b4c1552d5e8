package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/verdana-ai/verdana-web/internal/config"
	"github.com/verdana-ai/verdana-web/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site server",
		Long: `Start the site server.

Configuration is read from verdana.json in the working directory
(every field optional), then from VERDANA_* environment variables,
then from flags.

Examples:
  verdana-web serve
  verdana-web serve --port=8080
  verdana-web serve --host=0.0.0.0 --config=/etc/verdana/verdana.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, host, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to verdana.json")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

func runServe(configPath, host string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Host = host
	}
	if port > 0 {
		cfg.Port = port
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	srv := server.New(server.Options{
		Logger:            logger,
		DispatchQueueSize: cfg.DispatchQueueSize,
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "name", cfg.Name, "addr", cfg.Addr(), "version", version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("shutdown incomplete", "error", err)
	}

	// Shutdown does not close hijacked WebSocket connections.
	srv.Close()

	logger.Info("server stopped")
	return nil
}
