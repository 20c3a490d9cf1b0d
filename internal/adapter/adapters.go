// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
)

// NewDGCAdapter builds the adapter selected by adapterCfg.Transport.
func NewDGCAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DGCAdapter, error) {
	switch adapterCfg.Transport {
	case config.TransportGRPC:
		return NewGRPCDGCAdapter(adapterCfg, logger)
	case config.TransportHTTP, "":
		return NewHTTPDGCAdapter(adapterCfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, adapterCfg.Transport)
	}
}
