// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-dgc/internal/rpc"
	"github.com/MKhiriev/go-dgc/internal/utils"
)

// UnaryInterceptor tags each call with the caller's trace id, or a fresh
// one, attaches a call-scoped logger and writes one access log line.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := traceIDFromMetadata(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(utils.WithTraceID(ctx, traceID))

	_ = grpc.SetHeader(ctx, metadata.Pairs(rpc.TraceIDKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	event := l.Info()
	if code == codes.Internal || code == codes.Unknown {
		event = l.Error()
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func traceIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(rpc.TraceIDKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
