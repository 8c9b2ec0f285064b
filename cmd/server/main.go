package main

import (
	"fmt"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/handler"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/server"
	"github.com/MKhiriev/go-memory-calendar/internal/service"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/internal/workers"
	"github.com/MKhiriev/go-memory-calendar/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("memory-calendar-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = migrations.Migrate(cfg.Storage.DataDir); err != nil {
		log.Fatal().Err(err).Msg("error migrating data documents")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	appWorkers := workers.NewWorkers(cfg.Storage, cfg.Workers, log)
	go appWorkers.Run()

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
