package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/clipvault/clipvault/internal/backend"
	"github.com/clipvault/clipvault/internal/config"
	"github.com/clipvault/clipvault/internal/credstore"
	"github.com/clipvault/clipvault/internal/crypto"
	"github.com/clipvault/clipvault/internal/event"
	"github.com/clipvault/clipvault/internal/logger"
	"github.com/clipvault/clipvault/internal/notify"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/internal/sync"
	"github.com/clipvault/clipvault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("clipvault")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	creds, err := credstore.NewFileStore(credentialsDir(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential store")
	}
	encryption := crypto.NewEncryptionService(creds, log)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	adapter := backend.NewHTTPAdapter(backend.HTTPClientConfig{
		BaseURL:     cfg.Backend.BaseURL,
		ContainerID: cfg.Backend.ContainerID,
		DeviceToken: cfg.Backend.DeviceToken,
		Timeout:     cfg.Backend.RequestTimeout,
	})

	bus := event.NewBus(log)
	machine := sync.NewMachine(bus, log)
	controller := store.NewController(storages.Clips, adapter, log)
	orchestrator := sync.NewOrchestrator(
		machine,
		encryption,
		adapter,
		storages.Settings,
		controller,
		bus,
		sync.Timeouts{
			Probe:            cfg.Sync.ProbeTimeout,
			Account:          cfg.Sync.AccountTimeout,
			Sync:             cfg.Sync.CycleTimeout,
			PropagationGrace: cfg.Sync.PropagationGrace,
		},
		log,
	)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := orchestrator.Restore(ctx); err != nil {
		// Sync stays off for this session; the persisted intent retries it
		// on the next launch.
		log.Err(err).Msg("sync restore failed")
	}

	listener := notify.NewListener(notify.NewHandler(bus, log), cfg.Notify, log)
	go listener.Run()

	jobs := workers.NewWorkers(
		workers.NewCaptureJob(storages.Clips, encryption, bus, cfg.Workers.CaptureInterval, log),
		workers.NewSyncJob(orchestrator, cfg.Workers.SyncInterval),
	)
	jobs.Start(ctx)

	<-ctx.Done()
	log.Info().Msg("shutting down")

	jobs.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	listener.Shutdown(shutdownCtx)

	orchestrator.Close()
	log.Info().Msg("shutdown complete")
}

// credentialsDir resolves the access-controlled directory for key material,
// preferring the user config dir and falling back to the working directory.
func credentialsDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "clipvault", "credentials")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
