package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/seed"
	"tasklist/internal/service"
	"tasklist/internal/store/memory"
	"tasklist/internal/workerpool"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "tasklist",
		Short:        "tasklist - in-memory task list with progress tracking",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newSummaryCmd(opts),
		newExportCmd(opts),
		newShellCmd(opts),
	)
	return root
}

// app is the wired core shared by every command.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	observers *service.Observers
	pool      *workerpool.Pool
	svc       *service.TaskService
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	return newAppFromConfig(cfg)
}

func newAppFromConfig(cfg config.Config) (*app, error) {
	logger := cfg.Log.NewLogger(os.Stderr)

	tasks, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		return nil, err
	}

	observers := service.NewObservers()
	pool := workerpool.New(cfg.Notifier.PoolSize, observers.Notify)
	pool.Start(cfg.Notifier.Workers)

	svc, err := service.New(memory.New(tasks...), pool,
		service.WithSeed(tasks),
		service.WithLogger(logger),
	)
	if err != nil {
		_ = pool.Shutdown(context.Background())
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, observers: observers, pool: pool, svc: svc}, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.pool.Shutdown(ctx); err != nil {
		a.logger.Warn("event pool shutdown", slog.Any("err", err))
	}
}
