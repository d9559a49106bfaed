// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/client"
	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/tui"
	"github.com/MKhiriev/go-community-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewClientLogger("community-share-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	s := session.New()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, s, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(serverAdapter, s, localStorage.SessionRepository, cfg.Workers, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
