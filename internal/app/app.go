// Package app wires configuration, storage, the inventory service and its
// observers together. It is shared by the server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/rl1809/inventory-tracker/internal/adapter/export"
	"github.com/rl1809/inventory-tracker/internal/adapter/idgen"
	"github.com/rl1809/inventory-tracker/internal/adapter/metrics"
	"github.com/rl1809/inventory-tracker/internal/adapter/storage"
	"github.com/rl1809/inventory-tracker/internal/config"
	"github.com/rl1809/inventory-tracker/internal/core/service"
	"github.com/rl1809/inventory-tracker/internal/port"
)

type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Inventory *service.InventoryService
	Exporter  *export.Exporter
	Registry  *prometheus.Registry

	writer     *service.SnapshotWriter
	closeStore func() error
}

func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	repo, closeStore, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	state, err := service.LoadState(ctx, repo, logger)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("load state: %w", err)
	}

	sink, err := newExportSink(ctx, cfg)
	if err != nil {
		closeStore()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	collector.Set(state)

	writer := service.NewSnapshotWriter(repo, logger)
	inventory := service.NewInventoryService(state, idgen.NewUUID(), service.WithObservers(writer, collector))

	logger.Info().
		Str("store", cfg.StoreDriver).
		Int("items", len(state.Items)).
		Int("departments", len(state.Departments)).
		Int("transactions", len(state.Transactions)).
		Msg("inventory loaded")

	return &App{
		Config:     cfg,
		Logger:     logger,
		Inventory:  inventory,
		Exporter:   export.NewExporter(inventory, sink),
		Registry:   registry,
		writer:     writer,
		closeStore: closeStore,
	}, nil
}

// Close flushes the last snapshot and releases the store connection.
func (a *App) Close(ctx context.Context) error {
	flushErr := a.writer.Close(ctx)
	return errors.Join(flushErr, a.closeStore())
}

func newExportSink(ctx context.Context, cfg *config.Config) (port.ExportSink, error) {
	if cfg.ExportS3Bucket == "" {
		return export.NewDirSink(cfg.ExportDir), nil
	}
	sink, err := export.NewS3Sink(ctx, export.S3Config{
		Bucket:    cfg.ExportS3Bucket,
		Region:    cfg.ExportS3Region,
		Endpoint:  cfg.ExportS3Endpoint,
		Prefix:    cfg.ExportS3Prefix,
		PathStyle: cfg.ExportS3PathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 export sink: %w", err)
	}
	return sink, nil
}
