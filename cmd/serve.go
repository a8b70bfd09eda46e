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

	"github.com/spf13/cobra"

	"tasklist/internal/digest"
	"tasklist/internal/export"
	router "tasklist/internal/http"
	"tasklist/internal/http/handlers"
	"tasklist/internal/http/ws"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and live websocket feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return fmt.Errorf("load app: %w", err)
			}
			defer a.close()

			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			return a.serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func (a *app) serve() error {
	logger := a.logger.With(slog.String("component", "http"))

	hub := ws.NewHub(a.svc, a.logger)
	a.observers.Subscribe(hub.Broadcast)

	handler := handlers.New(a.svc, export.NewExporter(a.svc))

	server := &http.Server{
		Addr:    a.cfg.HTTP.Addr,
		Handler: router.New(handler, hub),
	}

	var dg *digest.Digest
	if a.cfg.Digest.Schedule != "" {
		var err error
		dg, err = digest.New(a.cfg.Digest.Schedule, a.svc, a.logger)
		if err != nil {
			return err
		}
		dg.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", a.cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		logger.Info("shut down signal received")
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if dg != nil {
		if err := dg.Stop(ctx); err != nil {
			logger.Warn("digest stop", slog.Any("err", err))
		}
	}
	err := server.Shutdown(ctx)
	hub.Close()
	if err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("shut down gracefully")
	return nil
}
