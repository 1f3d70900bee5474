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

	httpadapter "github.com/ktpham/nuclear-explorer/internal/adapter/http"
	"github.com/ktpham/nuclear-explorer/internal/config"
	"github.com/ktpham/nuclear-explorer/internal/dataset"
	"github.com/ktpham/nuclear-explorer/internal/explorer"
	"github.com/ktpham/nuclear-explorer/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// The banner asset is a startup requirement; its absence is fatal here
	// so it can never become a per-interaction failure.
	if err := checkBanner(cfg.BannerPath); err != nil {
		logger.Error("banner asset unavailable", "path", cfg.BannerPath, "error", err)
		os.Exit(1)
	}

	loader := dataset.NewLoader(cfg.DatasetCacheSize)
	data, dropped, loadErr := loader.Load(cfg.DatasetPath)
	if loadErr != nil {
		// Degrade, don't die: serve an empty dataset with a visible error.
		logger.Error("dataset load failed, serving empty dataset",
			"path", cfg.DatasetPath, "error", loadErr)
	} else {
		logger.Info("dataset loaded",
			"path", cfg.DatasetPath, "rows", len(data), "rows_dropped", dropped)
	}

	exp := explorer.New(data, dropped, loadErr, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.BannerPath, exp, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

func checkBanner(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
