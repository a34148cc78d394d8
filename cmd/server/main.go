package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/rl1809/inventory-tracker/internal/adapter/handler"
	"github.com/rl1809/inventory-tracker/internal/adapter/scheduler"
	"github.com/rl1809/inventory-tracker/internal/app"
	"github.com/rl1809/inventory-tracker/internal/config"
	"github.com/rl1809/inventory-tracker/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.Setup(cfg.LogLevel, cfg.IsProduction())

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize inventory")
	}

	// Scheduled exports
	var exports *scheduler.ExportScheduler
	if cfg.ExportSchedule != "" {
		exports, err = scheduler.NewExportScheduler(cfg.ExportSchedule, a.Exporter, logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create export scheduler")
		}
		exports.Start()
	}

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	handler.RegisterInventoryServer(grpcServer, handler.NewGRPCHandler(a.Inventory, logger))

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", grpcAddr).Msg("failed to listen")
	}

	go func() {
		logger.Info().Str("addr", grpcAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("gRPC server error")
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(a.Inventory, a.Exporter, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.NewRouter(httpHandler, a.Registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP shutdown")
	}
	logger.Info().Msg("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info().Msg("gRPC server stopped")

	if exports != nil {
		if err := exports.Stop(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("export scheduler stop")
		}
	}

	// Flush the last snapshot and close the store
	if err := a.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to flush inventory")
	}
	logger.Info().Msg("inventory flushed")
}
