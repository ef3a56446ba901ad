package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/config"
	handlerhttp "github.com/velichkin/innerpath/internal/handler/http"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/metrics"
	"github.com/velichkin/innerpath/internal/server"
	"github.com/velichkin/innerpath/internal/service"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("innerpath-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	contentCatalog, err := catalog.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading content catalog")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	services, err := service.NewServices(storages, contentCatalog, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
