// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dgc/internal/adapter"
	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	LeaseRenewer LeaseRenewer
	RenewJob     RenewJob
}

// NewClientServices wires the lease renewer and its job to serverAdapter.
func NewClientServices(serverAdapter adapter.DGCAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	renewer := NewLeaseRenewer(serverAdapter, cfg, logger)

	return &ClientServices{
		LeaseRenewer: renewer,
		RenewJob:     NewRenewJob(renewer, cfg.RetryInterval, logger),
	}
}
