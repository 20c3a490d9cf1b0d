// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// DGC server.
//
// The primary abstraction is [DGCAdapter], which decouples the lease renewer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDGCAdapter]) and a gRPC one ([NewGRPCDGCAdapter]).
//
// Failures that leave the outcome of a call unknown (connection errors,
// timeouts, gateway errors, unavailable gRPC servers) wrap [ErrCallFailed].
// Application errors map to the other sentinel values of this package so
// callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dgc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dgc_adapter_mock.go -package=mock

// DGCAdapter defines transport-agnostic communication with the DGC server.
type DGCAdapter interface {
	// Dirty sends a dirty call and returns the granted lease.
	Dirty(ctx context.Context, req models.DirtyRequest) (models.DirtyResponse, error)

	// Clean sends a clean call.
	Clean(ctx context.Context, req models.CleanRequest) error

	// Close releases the underlying connection.
	Close() error
}
