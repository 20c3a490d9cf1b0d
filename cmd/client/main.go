// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-dgc/internal/adapter"
	"github.com/MKhiriev/go-dgc/internal/client"
	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("dgc-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("dgc-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewDGCAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, cfg.Workers, log)

	app, err := client.NewApp(services, serverAdapter, cfg.ObjectIDs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
