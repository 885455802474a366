package main

import (
	"fmt"

	"github.com/MKhiriev/go-pdf-desk/internal/config"
	"github.com/MKhiriev/go-pdf-desk/internal/handler"
	"github.com/MKhiriev/go-pdf-desk/internal/logger"
	"github.com/MKhiriev/go-pdf-desk/internal/server"
	"github.com/MKhiriev/go-pdf-desk/internal/service"
	"github.com/MKhiriev/go-pdf-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pdf-stub-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(cfg, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
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
