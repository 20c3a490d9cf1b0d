// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/rpc"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeDGCServer answers with fixed values and records what it received.
type fakeDGCServer struct {
	dirtyResp *models.DirtyResponse
	err       error

	gotDirty   *models.DirtyRequest
	gotClean   *models.CleanRequest
	gotTraceID string
}

func (f *fakeDGCServer) Dirty(ctx context.Context, req *models.DirtyRequest) (*models.DirtyResponse, error) {
	f.gotDirty = req
	f.recordTraceID(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.dirtyResp, nil
}

func (f *fakeDGCServer) Clean(ctx context.Context, req *models.CleanRequest) (*rpc.Empty, error) {
	f.gotClean = req
	f.recordTraceID(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.Empty{}, nil
}

func (f *fakeDGCServer) recordTraceID(ctx context.Context) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(rpc.TraceIDKey); len(v) > 0 {
			f.gotTraceID = v[0]
		}
	}
}

func newTestGRPCAdapter(t *testing.T, srv rpc.DGCServer) *grpcDGCAdapter {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	rpc.RegisterDGCServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(forwardTraceIDInterceptor),
	)
	require.NoError(t, err)

	a := newGRPCDGCAdapter(conn, time.Second, logger.Nop())
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestGRPCAdapter_Dirty(t *testing.T) {
	srv := &fakeDGCServer{dirtyResp: &models.DirtyResponse{
		Lease:    models.NewLease(testVMID, 30*time.Second),
		Failures: []models.ObjectFailure{{ObjectID: testID, Reason: "object not exported"}},
	}}
	a := newTestGRPCAdapter(t, srv)

	req := models.DirtyRequest{ObjectIDs: []models.ObjectID{testID}, SequenceNum: 7, Lease: models.NewLease(models.VMID{}, time.Minute)}
	got, err := a.Dirty(utils.WithTraceID(context.Background(), "trace-7"), req)

	require.NoError(t, err)
	assert.True(t, got.Lease.VMID.Equal(testVMID))
	assert.Equal(t, int64(30000), got.Lease.Value)
	require.Len(t, got.Failures, 1)

	require.NotNil(t, srv.gotDirty)
	assert.Equal(t, int64(7), srv.gotDirty.SequenceNum)
	assert.Equal(t, []models.ObjectID{testID}, srv.gotDirty.ObjectIDs)
	assert.Equal(t, "trace-7", srv.gotTraceID)
}

func TestGRPCAdapter_Clean(t *testing.T) {
	srv := &fakeDGCServer{}
	a := newTestGRPCAdapter(t, srv)

	err := a.Clean(context.Background(), models.CleanRequest{
		ObjectIDs: []models.ObjectID{testID}, SequenceNum: 8, VMID: testVMID, Strong: true,
	})

	require.NoError(t, err)
	require.NotNil(t, srv.gotClean)
	assert.True(t, srv.gotClean.Strong)
	assert.True(t, srv.gotClean.VMID.Equal(testVMID))
}

func TestGRPCAdapter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid argument", status.Error(codes.InvalidArgument, "negative lease"), ErrBadRequest},
		{"not found", status.Error(codes.NotFound, "nope"), ErrNotFound},
		{"internal", status.Error(codes.Internal, "boom"), ErrInternalServerError},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrCallFailed},
		{"other", status.Error(codes.PermissionDenied, "no"), ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestGRPCAdapter(t, &fakeDGCServer{err: tt.err})

			err := a.Clean(context.Background(), models.CleanRequest{VMID: testVMID})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapGRPCError(t *testing.T) {
	assert.ErrorIs(t, mapGRPCError(status.Error(codes.DeadlineExceeded, "")), ErrCallFailed)
	assert.ErrorIs(t, mapGRPCError(status.Error(codes.Canceled, "")), ErrCallFailed)
	assert.ErrorIs(t, mapGRPCError(errors.New("not a status")), ErrCallFailed)
}

func TestGRPCAdapter_ServerGone(t *testing.T) {
	a := newTestGRPCAdapter(t, &fakeDGCServer{})
	require.NoError(t, a.conn.Close())

	err := a.Clean(context.Background(), models.CleanRequest{VMID: testVMID})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallFailed)
}
