// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/mock"
	"github.com/MKhiriev/go-dgc/internal/rpc"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/models"
)

var testSpace = models.UID{Unique: 9, Time: 1700000000000, Count: 2}

func testVMID(b byte) models.VMID {
	return models.VMID{
		Addr: []byte{b, 1, 2, 3, 4, 5, 6, 7},
		UID:  models.UID{Unique: int32(b), Time: 1700000000000, Count: 1},
	}
}

func testObjectID(num int64) models.ObjectID {
	return models.ObjectID{Num: num, Space: testSpace}
}

func newTestHandler(t *testing.T, log *logger.Logger) (*Handler, *mock.MockDGCService) {
	t.Helper()

	dgc := mock.NewMockDGCService(gomock.NewController(t))
	return NewHandler(&service.Services{DGCService: dgc}, log), dgc
}

// serve runs h behind a bufconn listener and returns a client for it.
func serve(t *testing.T, h *Handler) rpc.DGCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryInterceptor))
	rpc.RegisterDGCServer(s, h)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return rpc.NewDGCClient(conn)
}

func TestDirty_OverTheWire(t *testing.T) {
	h, dgc := newTestHandler(t, logger.Nop())
	client := serve(t, h)

	req := models.DirtyRequest{
		ObjectIDs:   []models.ObjectID{testObjectID(1)},
		SequenceNum: 2,
		Lease:       models.Lease{VMID: testVMID(1), Value: 10000},
	}
	want := models.DirtyResponse{Lease: models.Lease{VMID: testVMID(1), Value: 10000}}
	dgc.EXPECT().Dirty(gomock.Any(), req).Return(want, nil)

	got, err := client.Dirty(context.Background(), &req)

	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestClean_OverTheWire(t *testing.T) {
	h, dgc := newTestHandler(t, logger.Nop())
	client := serve(t, h)

	req := models.CleanRequest{
		ObjectIDs:   []models.ObjectID{testObjectID(1), testObjectID(2)},
		SequenceNum: 3,
		VMID:        testVMID(4),
		Strong:      true,
	}
	dgc.EXPECT().Clean(gomock.Any(), req).Return(nil)

	_, err := client.Clean(context.Background(), &req)

	require.NoError(t, err)
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{name: "negative lease", err: service.ErrNegativeLeaseDuration, wantCode: codes.InvalidArgument},
		{name: "wrapped negative lease", err: fmt.Errorf("dirty: %w", service.ErrNegativeLeaseDuration), wantCode: codes.InvalidArgument},
		{name: "not exported", err: service.ErrObjectNotExported, wantCode: codes.NotFound},
		{name: "canceled", err: context.Canceled, wantCode: codes.Canceled},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: codes.DeadlineExceeded},
		{name: "unexpected", err: errors.New("boom"), wantCode: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dgc := newTestHandler(t, logger.Nop())
			dgc.EXPECT().Dirty(gomock.Any(), gomock.Any()).Return(models.DirtyResponse{}, tt.err)

			_, err := h.Dirty(context.Background(), &models.DirtyRequest{})

			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestErrorCodes_InternalIsNotEchoed(t *testing.T) {
	h, dgc := newTestHandler(t, logger.Nop())
	dgc.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(errors.New("secret detail"))

	_, err := h.Clean(context.Background(), &models.CleanRequest{})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "secret")
}

func TestUnaryInterceptor_TraceID(t *testing.T) {
	t.Run("forwarded", func(t *testing.T) {
		var buf bytes.Buffer
		h, dgc := newTestHandler(t, &logger.Logger{Logger: zerolog.New(&buf)})
		client := serve(t, h)

		dgc.EXPECT().Clean(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ models.CleanRequest) error {
				traceID, ok := utils.GetTraceIDFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, "trace-1", traceID)
				return nil
			},
		)

		ctx := metadata.AppendToOutgoingContext(context.Background(), rpc.TraceIDKey, "trace-1")
		var header metadata.MD
		_, err := client.Clean(ctx, &models.CleanRequest{}, grpc.Header(&header))

		require.NoError(t, err)
		assert.Equal(t, []string{"trace-1"}, header.Get(rpc.TraceIDKey))
		assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
		assert.Contains(t, buf.String(), `"method":"`+rpc.CleanFullMethodName+`"`)
		assert.Contains(t, buf.String(), `"code":"OK"`)
	})

	t.Run("generated", func(t *testing.T) {
		h, dgc := newTestHandler(t, logger.Nop())
		client := serve(t, h)

		dgc.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(nil)

		var header metadata.MD
		_, err := client.Clean(context.Background(), &models.CleanRequest{}, grpc.Header(&header))

		require.NoError(t, err)
		require.Len(t, header.Get(rpc.TraceIDKey), 1)
		assert.NotEmpty(t, header.Get(rpc.TraceIDKey)[0])
	})
}

func TestUnaryInterceptor_LogsFailuresAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	h, dgc := newTestHandler(t, &logger.Logger{Logger: zerolog.New(&buf)})
	client := serve(t, h)

	dgc.EXPECT().Dirty(gomock.Any(), gomock.Any()).Return(models.DirtyResponse{}, errors.New("boom"))

	_, err := client.Dirty(context.Background(), &models.DirtyRequest{})

	require.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"code":"Internal"`)
}
