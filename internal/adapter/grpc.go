// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/rpc"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type grpcDGCAdapter struct {
	conn    *grpc.ClientConn
	client  rpc.DGCClient
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCDGCAdapter constructs a gRPC implementation of [DGCAdapter] dialing
// adapterCfg.GRPCAddress. The connection is established lazily on the first
// call.
func NewGRPCDGCAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DGCAdapter, error) {
	addr := strings.TrimSpace(adapterCfg.GRPCAddress)
	if addr == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(forwardTraceIDInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating grpc client: %w", err)
	}

	return newGRPCDGCAdapter(conn, adapterCfg.RequestTimeout, logger), nil
}

func newGRPCDGCAdapter(conn *grpc.ClientConn, timeout time.Duration, logger *logger.Logger) *grpcDGCAdapter {
	return &grpcDGCAdapter{
		conn:    conn,
		client:  rpc.NewDGCClient(conn),
		timeout: timeout,
		logger:  logger.WithComponent("grpc_adapter"),
	}
}

// Dirty implements [DGCAdapter].
func (g *grpcDGCAdapter) Dirty(ctx context.Context, req models.DirtyRequest) (models.DirtyResponse, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.Dirty(ctx, &req)
	if err != nil {
		return models.DirtyResponse{}, mapGRPCError(err)
	}

	g.logger.Debug().
		Int64("seq", req.SequenceNum).
		Int64("lease_ms", resp.Lease.Value).
		Int("failures", len(resp.Failures)).
		Msg("dirty call succeeded")

	return *resp, nil
}

// Clean implements [DGCAdapter].
func (g *grpcDGCAdapter) Clean(ctx context.Context, req models.CleanRequest) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if _, err := g.client.Clean(ctx, &req); err != nil {
		return mapGRPCError(err)
	}

	return nil
}

// Close implements [DGCAdapter].
func (g *grpcDGCAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcDGCAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, g.timeout)
}

func forwardTraceIDInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.TraceIDKey, traceID)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func mapGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrCallFailed, err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrCallFailed, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrBadRequest, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.Internal:
		return fmt.Errorf("%w: %s", ErrInternalServerError, st.Message())
	default:
		return fmt.Errorf("%w: grpc %s: %s", ErrUnexpectedResponse, st.Code(), st.Message())
	}
}
