// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/handler"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/mock"
	"github.com/MKhiriev/go-dgc/internal/rpc"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/models"
)

type serverFixture struct {
	dgc     *mock.MockDGCService
	appInfo *mock.MockAppInfoService
	worker  *mock.MockWorker
	server  *server
}

func newServerFixture(t *testing.T, cfg config.Server) *serverFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &serverFixture{
		dgc:     mock.NewMockDGCService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		worker:  mock.NewMockWorker(ctrl),
	}

	handlers, err := handler.NewHandlers(&service.Services{
		DGCService:     f.dgc,
		AppInfoService: f.appInfo,
	}, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, f.worker, cfg, logger.Nop())
	require.NoError(t, err)
	f.server = s.(*server)

	return f
}

func (f *serverFixture) addr(kind string) string {
	for _, t := range f.server.transports {
		switch t := t.(type) {
		case *httpServer:
			if kind == "http" {
				return t.listener.Addr().String()
			}
		case *grpcServer:
			if kind == "grpc" {
				return t.listener.Addr().String()
			}
		}
	}
	return ""
}

// blockingWorker makes the mock worker run until its context ends.
func blockingWorker(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := config.Server{HTTPAddress: taken.Addr().String()}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, nil, cfg, logger.Nop())

	assert.Error(t, err)
}

func TestRun_ServesBothTransportsUntilCancelled(t *testing.T) {
	f := newServerFixture(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})
	f.worker.EXPECT().Run(gomock.Any()).DoAndReturn(blockingWorker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.server.Run(ctx) }()

	// HTTP
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "v1"})

	resp, err := http.Get("http://" + f.addr("http") + "/api/version/")
	require.NoError(t, err)
	var version models.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	_ = resp.Body.Close()
	assert.Equal(t, "v1", version.Version)

	// gRPC
	f.dgc.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(nil)

	conn, err := grpc.NewClient(f.addr("grpc"), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	_, err = rpc.NewDGCClient(conn).Clean(callCtx, &models.CleanRequest{})
	require.NoError(t, err)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_WorkerFailureStopsTransports(t *testing.T) {
	f := newServerFixture(t, config.Server{HTTPAddress: "127.0.0.1:0"})

	errWorker := errors.New("worker failed")
	f.worker.EXPECT().Run(gomock.Any()).Return(errWorker)

	done := make(chan error, 1)
	go func() { done <- f.server.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errWorker)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err := net.DialTimeout("tcp", f.addr("http"), time.Second)
	assert.Error(t, err, "listener should be closed")
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	f := newServerFixture(t, config.Server{GRPCAddress: "127.0.0.1:0"})
	f.worker.EXPECT().Run(gomock.Any()).DoAndReturn(blockingWorker)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, f.server.Run(ctx))
}
