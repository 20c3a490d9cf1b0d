// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

// ClientAdapter selects and addresses the transport of the client.
type ClientAdapter struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
	// Transport is "http" or "grpc".
	Transport string
}

// ClientWorkers configures the renew job.
type ClientWorkers struct {
	// LeaseValue is the lease duration requested in every dirty call.
	LeaseValue time.Duration
	// RetryInterval is the pause before retrying after a failed call.
	RetryInterval time.Duration
	// CleanRetries bounds the re-sends of a failed clean call.
	CleanRetries int
}

// ClientConfig is the validated subset of [StructuredConfig] the client
// binary runs with.
type ClientConfig struct {
	Adapter ClientAdapter
	Workers ClientWorkers
	// ObjectIDs are the objects referenced at start.
	ObjectIDs []models.ObjectID
	// LogLevel is the minimum client log level.
	LogLevel string
}

// GetClientConfig loads [GetStructuredConfig] and narrows it to a
// [ClientConfig], parsing the object ids on the way.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	objectIDs := make([]models.ObjectID, 0, len(cfg.Client.ObjectIDs))
	for _, raw := range cfg.Client.ObjectIDs {
		id, err := models.ParseObjectID(raw)
		if err != nil {
			return nil, fmt.Errorf("error parsing client object ids: %w", err)
		}
		objectIDs = append(objectIDs, id)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Transport:      strings.ToLower(cfg.Adapter.Transport),
		},
		Workers: ClientWorkers{
			LeaseValue:    cfg.Workers.LeaseValue,
			RetryInterval: cfg.Workers.RetryInterval,
			CleanRetries:  cfg.Workers.CleanRetries,
		},
		ObjectIDs: objectIDs,
		LogLevel:  cfg.Client.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
