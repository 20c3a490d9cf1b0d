// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/rpc"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/models"
)

// Handler serves the DGC gRPC service.
//
// It decodes nothing itself: requests arrive as model values through the
// JSON codec of package rpc, are handed to the DGC service and service
// errors are translated to gRPC status codes.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

var _ rpc.DGCServer = (*Handler)(nil)

// NewHandler constructs a [Handler] over the given service container.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) Dirty(ctx context.Context, req *models.DirtyRequest) (*models.DirtyResponse, error) {
	resp, err := h.services.DGCService.Dirty(ctx, *req)
	if err != nil {
		return nil, toStatus(ctx, err, "dirty call failed")
	}

	return &resp, nil
}

func (h *Handler) Clean(ctx context.Context, req *models.CleanRequest) (*rpc.Empty, error) {
	if err := h.services.DGCService.Clean(ctx, *req); err != nil {
		return nil, toStatus(ctx, err, "clean call failed")
	}

	return &rpc.Empty{}, nil
}

var errorCodeMap = map[error]codes.Code{
	service.ErrNegativeLeaseDuration: codes.InvalidArgument,
	service.ErrObjectNotExported:     codes.NotFound,
}

func toStatus(ctx context.Context, err error, msg string) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			logger.FromContext(ctx).Debug().Err(err).Msg(msg)
			return status.Error(code, err.Error())
		}
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return status.Error(codes.Internal, "internal error")
}
