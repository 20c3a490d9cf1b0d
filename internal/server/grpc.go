// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-dgc/internal/config"
	myGRPC "github.com/MKhiriev/go-dgc/internal/handler/grpc"
	"github.com/MKhiriev/go-dgc/internal/rpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen grpc on %s: %w", cfg.GRPCAddress, err)
	}

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(handler.UnaryInterceptor)}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	server := grpc.NewServer(opts...)
	rpc.RegisterDGCServer(server, handler)

	return &grpcServer{server: server, listener: listener}, nil
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// shutdown waits for in-flight calls until ctx expires, then stops hard.
func (g *grpcServer) shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-done
		return ctx.Err()
	}
}

func (g *grpcServer) name() string {
	return "grpc"
}
