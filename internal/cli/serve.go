package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/settle/internal/api"
	"github.com/mmynk/settle/internal/service"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default from config, 127.0.0.1:8080)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the settlement HTTP API",
	Long: `Run the HTTP API server. It exposes settlement computation and roster
management as JSON endpoints, plus /health and (when enabled in the
config) Prometheus metrics on /metrics.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr()
	}

	store, err := openStore()
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DB.Path)

	srv := api.NewServer(service.NewSettleService(store), service.NewRosterService(store))
	if cfg.Server.Metrics {
		srv.EnableMetrics()
	}

	// h2c allows HTTP/2 without TLS for local and reverse-proxied deployments.
	handler := h2c.NewHandler(srv.Handler(), &http2.Server{})

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server starting", "address", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return err
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			return err
		}
	}

	return nil
}
