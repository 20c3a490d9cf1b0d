// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the DGC server.
type Server interface {
	// RunServer serves until a stop signal arrives or a component fails.
	RunServer() error

	// Run serves until ctx is cancelled or a component fails. All
	// transports are shut down before it returns.
	Run(ctx context.Context) error
}

// transport is one listening server managed by [Server].
type transport interface {
	// serve blocks until the transport stops. A stop requested through
	// shutdown is not an error.
	serve() error
	shutdown(ctx context.Context) error
	name() string
}
