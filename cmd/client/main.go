package main

import (
	"fmt"

	"github.com/MKhiriev/go-pdf-desk/internal/adapter"
	"github.com/MKhiriev/go-pdf-desk/internal/client"
	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/internal/store"
	"github.com/MKhiriev/go-pdf-desk/internal/tui"
	"github.com/MKhiriev/go-pdf-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("pdf-desk-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("pdf-desk-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client storages")
	}

	services := service.NewClientServices(storages, serverAdapter, log)

	ui, err := tui.New(services, cfg.App.StartDir, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
