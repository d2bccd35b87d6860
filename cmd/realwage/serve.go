package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/realwage/internal/config"
	"github.com/mmynk/realwage/internal/middleware"
	"github.com/mmynk/realwage/internal/service"
	"github.com/mmynk/realwage/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI and JSON API.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().String(config.KeyAddr, config.DefaultAddr, "HTTP listen address")
	cmd.Flags().String(config.KeyStaticPath, "", "serve the UI from this directory instead of the embedded files")
	_ = a.v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup(config.KeyAddr))
	_ = a.v.BindPFlag(config.KeyStaticPath, cmd.Flags().Lookup(config.KeyStaticPath))

	return cmd
}

// newHandler assembles routes and middleware.
func (a *app) newHandler() http.Handler {
	metrics := middleware.NewMetrics()
	svc := service.NewInflationService(a.table,
		service.WithEndYear(a.cfg.EndYear),
		service.WithMetrics(metrics),
	)

	mux := http.NewServeMux()
	svc.Register(mux, connect.WithInterceptors(middleware.LoggingInterceptor()))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /", web.Handler(a.cfg.StaticPath))

	if a.cfg.StaticPath != "" {
		slog.Info("Serving static files", "path", a.cfg.StaticPath)
	}

	// Request IDs first so every later layer can log them
	return middleware.RequestID(middleware.Logging(middleware.CORS(mux)))
}

func (a *app) serve(ctx context.Context) error {
	// Wrap with h2c for HTTP/2 without TLS
	handler := h2c.NewHandler(a.newHandler(), &http2.Server{})

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", a.cfg.Addr, "url", localURL(a.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// localURL turns a listen address into a browsable URL.
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
