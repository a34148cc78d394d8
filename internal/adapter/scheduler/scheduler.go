package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const exportTimeout = time.Minute

type Exporter interface {
	ExportInventory(ctx context.Context) (string, error)
	ExportTransactions(ctx context.Context) (string, error)
}

// ExportScheduler writes both CSV exports on a cron schedule.
type ExportScheduler struct {
	cron     *cron.Cron
	exporter Exporter
	logger   zerolog.Logger
}

func NewExportScheduler(spec string, exporter Exporter, logger zerolog.Logger) (*ExportScheduler, error) {
	s := &ExportScheduler{
		cron:     cron.New(),
		exporter: exporter,
		logger:   logger.With().Str("component", "export_scheduler").Logger(),
	}
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid export schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *ExportScheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("export scheduler started")
}

// Stop prevents further runs and waits for a running export to finish.
func (s *ExportScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run performs one export of inventory and transactions.
func (s *ExportScheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	for _, job := range []struct {
		name string
		fn   func(context.Context) (string, error)
	}{
		{"inventory", s.exporter.ExportInventory},
		{"transactions", s.exporter.ExportTransactions},
	} {
		location, err := job.fn(ctx)
		if err != nil {
			s.logger.Error().Err(err).Str("export", job.name).Msg("scheduled export failed")
			continue
		}
		s.logger.Info().Str("export", job.name).Str("location", location).Msg("scheduled export written")
	}
}
