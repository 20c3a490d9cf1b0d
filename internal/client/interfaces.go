// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until a stop signal.
	Run() error

	// RunContext is Run bounded by ctx instead of process signals.
	RunContext(ctx context.Context) error
}
