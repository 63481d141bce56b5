package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/InventorySystem_Go/internal/catalog"
	"github.com/osse101/InventorySystem_Go/internal/component"
	"github.com/osse101/InventorySystem_Go/internal/config"
	"github.com/osse101/InventorySystem_Go/internal/inventory"
	"github.com/osse101/InventorySystem_Go/internal/logger"
	"github.com/osse101/InventorySystem_Go/internal/metrics"
	"github.com/osse101/InventorySystem_Go/internal/registry"
	"github.com/osse101/InventorySystem_Go/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithSessionID(ctx, logger.GenerateSessionID())

	if err := run(ctx, cfg); err != nil {
		logger.FromContext(ctx).Error("Host exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)

	loader := catalog.NewLoader()
	catalogConfig, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if err := loader.Validate(catalogConfig); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	owners := registry.New(func(owner uuid.UUID) *inventory.Inventory {
		return inventory.New(
			inventory.WithRecorder(recorder),
			inventory.WithLogger(slog.Default().With("owner", owner.String())),
		)
	})

	actor := component.NewActor("hero")
	if err := owners.Create(actor.ID); err != nil {
		return err
	}
	recorder.SetActorsActive(owners.Len())

	if err := owners.With(actor.ID, func(inv *inventory.Inventory) error {
		if _, err := catalog.Apply(ctx, catalogConfig, inv); err != nil {
			return err
		}
		return actor.Attach(ctx, inv)
	}); err != nil {
		return fmt.Errorf("failed to set up actor %s: %w", actor.Name, err)
	}
	if err := actor.Attach(ctx, newDemoScript(owners, actor.ID, catalogConfig)); err != nil {
		return err
	}

	var srv *server.Server
	if cfg.MetricsPort > 0 {
		srv = server.NewServer(cfg.MetricsPort, reg, owners.Len)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Metrics server failed", "error", err)
			}
		}()
	}

	if err := actor.Start(ctx); err != nil {
		return err
	}
	runErr := actor.Run(ctx, cfg.FrameInterval, cfg.DemoFrames)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Error("Metrics server forced to shutdown", "error", err)
		}
	}

	_ = owners.With(actor.ID, func(inv *inventory.Inventory) error {
		for _, entry := range inv.GetInventory() {
			log.Info("Final holdings",
				"item", entry.Name,
				"quantity", entry.Quantity,
				"equipped", entry.IsEquipped)
		}
		return nil
	})
	return runErr
}
