// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/export"
	"github.com/MKhiriev/go-dgc/internal/handler"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/server"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/internal/store"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/internal/workers"
	"github.com/MKhiriev/go-dgc/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("dgc-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	uids, err := utils.NewUIDGenerator(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating uid generator")
	}
	vmids, err := utils.NewVMIDGenerator(nil, uids)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vmid generator")
	}

	space := uids.Next()
	log.Info().Str("space", space.String()).Msg("object id space allocated")

	exports := export.NewTable(space, storages.References, log.WithComponent("exports"))
	services := service.NewServices(storages, exports, vmids, buildInfo, log)

	backgroundWorkers, err := workers.NewWorkers(storages, exports, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}
	if err = backgroundWorkers.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("error restoring sequence checkpoints")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
