package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/masrouf-app/masrouf/internal/adapter"
	"github.com/masrouf-app/masrouf/internal/client"
	"github.com/masrouf-app/masrouf/internal/config"
	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/internal/service"
	"github.com/masrouf-app/masrouf/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.New("masrouf")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogFile != "" {
		logFile, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatal().Err(err).Msg("error opening log file")
		}
		defer logFile.Close()
		log = logger.NewWithOutput("masrouf", logFile)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storage, err := store.New(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}
	defer storage.Close()

	key, err := adapter.LoadServiceAccountKey(cfg.Google.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading google credentials")
	}
	tokens := adapter.NewServiceAccountTokenSource(key, cfg.Google.RequestTimeout)

	backend := adapter.NewSheetsAdapter(adapter.SheetsConfig{
		SpreadsheetID:    cfg.Google.SpreadsheetID,
		SpreadsheetTitle: cfg.Google.SpreadsheetTitle,
		Timeout:          cfg.Google.RequestTimeout,
	}, tokens, storage, log)

	services := service.NewServices(service.Deps{
		Records:     storage,
		Checkpoints: storage,
		State:       storage,
		Backend:     backend,
		SyncOptions: service.SyncOptions{PreserveRemoteOnFirstSync: cfg.Workers.PreserveRemoteOnFirstSync},
		Debounce:    cfg.Workers.SyncDebounce,
		Logger:      log,
	})

	app := client.NewApp(services, cfg.Workers, log)
	if err = app.Run(ctx, flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("masrouf run error")
	}
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
