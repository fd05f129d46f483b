package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/handler"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/metrics"
	"github.com/MKhiriev/go-uaa/internal/server"
	"github.com/MKhiriev/go-uaa/internal/service"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-uaa-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.NewMetrics()

	backgroundWorkers, err := workers.NewWorkers(services, m, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	handlers, err := handler.NewHandlers(services, storages, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
