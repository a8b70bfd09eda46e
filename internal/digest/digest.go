// Package digest periodically logs task list progress.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"tasklist/internal/domain"
)

var ErrNoSchedule = errors.New("digest schedule is empty")

type SummarySource interface {
	Summary() domain.Summary
}

type Digest struct {
	cron   *cron.Cron
	src    SummarySource
	logger *slog.Logger
}

// New accepts standard five-field cron expressions and descriptors such
// as "@hourly" or "@every 30m".
func New(schedule string, src SummarySource, logger *slog.Logger) (*Digest, error) {
	if schedule == "" {
		return nil, ErrNoSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}

	d := &Digest{
		cron:   cron.New(),
		src:    src,
		logger: logger.With(slog.String("component", "digest")),
	}
	if _, err := d.cron.AddFunc(schedule, d.Run); err != nil {
		return nil, fmt.Errorf("digest schedule %q: %w", schedule, err)
	}
	return d, nil
}

// Run logs the current summary once.
func (d *Digest) Run() {
	s := d.src.Summary()
	d.logger.Info("progress",
		slog.Int("completed", s.Completed),
		slog.Int("total", s.Total),
		slog.Int("percentage", s.Percentage),
	)
}

func (d *Digest) Start() {
	d.cron.Start()
	d.logger.Info("digest started", slog.Int("entries", len(d.cron.Entries())))
}

// Stop halts the scheduler and waits for a running digest, or ctx.
func (d *Digest) Stop(ctx context.Context) error {
	done := d.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
