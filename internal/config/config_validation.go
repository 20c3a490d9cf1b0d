// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults] to zero-valued fields.
const (
	DefaultMaxLeaseDuration   = 10 * time.Minute
	DefaultSweepInterval      = time.Second
	DefaultShardCount         = 32
	DefaultStrongRetention    = 24 * time.Hour
	DefaultRequestTimeout     = 10 * time.Second
	DefaultCheckpointInterval = 30 * time.Second
	DefaultRetryInterval      = time.Second
	DefaultCleanRetries       = 5
	DefaultTransport          = TransportHTTP

	// sequenceRetentionFactor sets the default sequence retention relative
	// to the maximum lease.
	sequenceRetentionFactor = 10
)

// Supported client transports.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.DGC.MaxLeaseDuration == 0 {
		cfg.DGC.MaxLeaseDuration = DefaultMaxLeaseDuration
	}
	if cfg.DGC.SweepInterval == 0 {
		cfg.DGC.SweepInterval = DefaultSweepInterval
	}
	if cfg.DGC.ShardCount == 0 {
		cfg.DGC.ShardCount = DefaultShardCount
	}
	if cfg.DGC.SequenceRetention == 0 {
		cfg.DGC.SequenceRetention = sequenceRetentionFactor * cfg.DGC.MaxLeaseDuration
	}
	if cfg.DGC.StrongRetention == 0 {
		cfg.DGC.StrongRetention = DefaultStrongRetention
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.Transport == "" {
		cfg.Adapter.Transport = DefaultTransport
	}
	if cfg.Workers.CheckpointInterval == 0 {
		cfg.Workers.CheckpointInterval = DefaultCheckpointInterval
	}
	if cfg.Workers.LeaseValue == 0 {
		cfg.Workers.LeaseValue = cfg.DGC.MaxLeaseDuration
	}
	if cfg.Workers.RetryInterval == 0 {
		cfg.Workers.RetryInterval = DefaultRetryInterval
	}
	if cfg.Workers.CleanRetries == 0 {
		cfg.Workers.CleanRetries = DefaultCleanRetries
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors of this package otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.DGC.MaxLeaseDuration < 0 || cfg.DGC.SweepInterval <= 0 || cfg.DGC.ShardCount < 1 {
		return fmt.Errorf("%w: max lease %s, sweep interval %s, shards %d",
			ErrInvalidDGCConfigs, cfg.DGC.MaxLeaseDuration, cfg.DGC.SweepInterval, cfg.DGC.ShardCount)
	}

	if cfg.DGC.SequenceRetention < cfg.DGC.MaxLeaseDuration || cfg.DGC.StrongRetention < cfg.DGC.SequenceRetention {
		return fmt.Errorf("%w: sequence retention %s and strong retention %s must cover the max lease %s",
			ErrInvalidDGCConfigs, cfg.DGC.SequenceRetention, cfg.DGC.StrongRetention, cfg.DGC.MaxLeaseDuration)
	}

	if cfg.Workers.CheckpointInterval <= 0 || cfg.Workers.RetryInterval <= 0 ||
		cfg.Workers.LeaseValue < 0 || cfg.Workers.CleanRetries < 0 {
		return ErrInvalidWorkerConfigs
	}

	switch strings.ToLower(cfg.Adapter.Transport) {
	case TransportHTTP, TransportGRPC:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Transport {
	case TransportHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: empty http address", ErrInvalidAdapterConfigs)
		}
	case TransportGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return fmt.Errorf("%w: empty grpc address", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.LeaseValue <= 0 || cfg.Workers.RetryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if len(cfg.ObjectIDs) == 0 {
		return ErrNoObjectIDs
	}

	return nil
}
