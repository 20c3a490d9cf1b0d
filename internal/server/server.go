// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/handler"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/workers"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type server struct {
	transports []transport
	workers    workers.Worker
	logger     *logger.Logger
}

// NewServer binds a listener for every configured transport. Workers may
// be nil.
func NewServer(handlers *handler.Handlers, worker workers.Worker, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{workers: worker, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		h, err := newHTTPServer(handlers.HTTP.Init(), cfg)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, h)
		logger.Info().Str("address", h.listener.Addr().String()).Msg("http listener bound")
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.transports = append(s.transports, g)
		logger.Info().Str("address", g.listener.Addr().String()).Msg("grpc listener bound")
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		g.Go(t.serve)
	}
	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

func (s *server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Err(err).Str("transport", t.name()).Msg("shutdown failed")
		}
	}
}

func (s *server) closeListeners() {
	for _, t := range s.transports {
		switch t := t.(type) {
		case *httpServer:
			_ = t.listener.Close()
		case *grpcServer:
			_ = t.listener.Close()
		}
	}
}
