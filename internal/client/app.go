// SPDX-License-Identifier: Apache-2.0

// Package client assembles the running application: it owns startup
// sequencing, command dispatch, and graceful shutdown around the service
// layer.
package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/masrouf-app/masrouf/internal/config"
	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/internal/service"
)

type App struct {
	services *service.Services
	workers  config.Workers
	log      *logger.Logger
}

func NewApp(services *service.Services, workers config.Workers, log *logger.Logger) *App {
	return &App{services: services, workers: workers, log: log}
}

// Run dispatches on command:
//
//	sync (default) — run one sync cycle and exit
//	daemon         — keep syncing on the configured interval until SIGINT/SIGTERM
//	reset-sync     — clear sync checkpoints and exit
func (a *App) Run(ctx context.Context, command string) error {
	if err := a.services.TrackerService.EnsureDefaultCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	switch command {
	case "", "sync":
		return a.runOnce(ctx)
	case "daemon":
		return a.runDaemon(ctx)
	case "reset-sync":
		if err := a.services.SyncService.ResetSyncState(ctx); err != nil {
			return err
		}
		fmt.Println("Sync state reset; the next sync resolves by timestamp only")
		return nil
	default:
		return fmt.Errorf("unknown command %q (expected sync, daemon or reset-sync)", command)
	}
}

func (a *App) runOnce(ctx context.Context) error {
	result, err := a.services.SyncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	fmt.Println(result.Message)

	return nil
}

func (a *App) runDaemon(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// First cycle runs eagerly; a failure here is survivable because the
	// ticker retries.
	if result, err := a.services.SyncService.Sync(ctx); err != nil {
		a.log.Warn().Err(err).Msg("initial sync failed")
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
	} else {
		fmt.Println(result.Message)
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	a.log.Info().Dur("interval", a.workers.SyncInterval).Msg("daemon started")
	<-ctx.Done()
	a.log.Info().Msg("shutting down")

	return nil
}
