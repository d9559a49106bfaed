// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/handler"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/workers"
)

// backgroundRunner is satisfied by *workers.Workers.
type backgroundRunner interface {
	Run(ctx context.Context) error
}

type server struct {
	httpServer *httpServer
	workers    backgroundRunner
	logger     *logger.Logger
}

// NewServer builds the HTTP server from handlers and attaches the
// background workers. ws may be nil.
func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.ServerHTTP, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if s.httpServer == nil {
		return nil, errNoServersAreCreated
	}
	if ws != nil {
		s.workers = ws
	}

	return s, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

// serve runs until ctx is cancelled or a worker fails, then stops the HTTP
// server and waits for the workers to return.
func (s *server) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var workersDone chan error
	if s.workers != nil {
		workersDone = make(chan error, 1)
		go func() {
			workersDone <- s.workers.Run(ctx)
		}()
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	var err error
	select {
	case <-ctx.Done():
		if workersDone != nil {
			err = <-workersDone
		}
	case err = <-workersDone:
		s.logger.Error().Err(err).Msg("background workers stopped")
	}

	cancel()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
