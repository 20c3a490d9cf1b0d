// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Server(t *testing.T) {
	var cfg StructuredConfig
	err := parseEnv(&cfg, map[string]string{
		"CONFIG":                      "/etc/dgc/server.json",
		"DGC_MAX_LEASE_DURATION":      "5m",
		"DGC_SWEEP_INTERVAL":          "2s",
		"DGC_SHARD_COUNT":             "64",
		"DGC_SEQUENCE_RETENTION":      "1h",
		"DGC_STRONG_RETENTION":        "48h",
		"SERVER_ADDRESS":              "0.0.0.0:8080",
		"SERVER_GRPC_ADDRESS":         "0.0.0.0:9090",
		"SERVER_REQUEST_TIMEOUT":      "15s",
		"STORAGE_DB_DATABASE_URI":     "file:dgc.db",
		"WORKERS_CHECKPOINT_INTERVAL": "10s",
	})
	require.NoError(t, err)

	assert.Equal(t, StructuredConfig{
		DGC: DGC{
			MaxLeaseDuration:  5 * time.Minute,
			SweepInterval:     2 * time.Second,
			ShardCount:        64,
			SequenceRetention: time.Hour,
			StrongRetention:   48 * time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "file:dgc.db"}},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			GRPCAddress:    "0.0.0.0:9090",
			RequestTimeout: 15 * time.Second,
		},
		Workers:      Workers{CheckpointInterval: 10 * time.Second},
		JSONFilePath: "/etc/dgc/server.json",
	}, cfg)
}

func TestParseEnv_Client(t *testing.T) {
	var cfg StructuredConfig
	err := parseEnv(&cfg, map[string]string{
		"ADAPTER_ADDRESS":         "dgc.local:8080",
		"ADAPTER_GRPC_ADDRESS":    "dgc.local:9090",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
		"ADAPTER_TRANSPORT":       "grpc",
		"WORKERS_LEASE_VALUE":     "3m",
		"WORKERS_RETRY_INTERVAL":  "250ms",
		"WORKERS_CLEAN_RETRIES":   "2",
		"CLIENT_OBJECT_IDS":       "1@a:b:c,2@a:b:c",
		"CLIENT_LOG_LEVEL":        "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, Adapter{
		HTTPAddress:    "dgc.local:8080",
		GRPCAddress:    "dgc.local:9090",
		RequestTimeout: 3 * time.Second,
		Transport:      TransportGRPC,
	}, cfg.Adapter)
	assert.Equal(t, Workers{LeaseValue: 3 * time.Minute, RetryInterval: 250 * time.Millisecond, CleanRetries: 2}, cfg.Workers)
	assert.Equal(t, Client{ObjectIDs: []string{"1@a:b:c", "2@a:b:c"}, LogLevel: "warn"}, cfg.Client)
	assert.Equal(t, DGC{}, cfg.DGC)
}

func TestParseEnv_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("DGC_SHARD_COUNT", "16")

	var fromMap StructuredConfig
	require.NoError(t, parseEnv(&fromMap, nil))
	assert.Zero(t, fromMap.DGC.ShardCount)

	var fromProcess StructuredConfig
	require.NoError(t, parseEnv(&fromProcess, processEnv()))
	assert.Equal(t, 16, fromProcess.DGC.ShardCount)
}

func TestParseEnv_Rejects(t *testing.T) {
	tests := map[string]map[string]string{
		"lease not a duration": {"DGC_MAX_LEASE_DURATION": "ten minutes"},
		"shards not a number":  {"DGC_SHARD_COUNT": "many"},
		"retries not a number": {"WORKERS_CLEAN_RETRIES": "-"},
	}

	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			var cfg StructuredConfig
			err := parseEnv(&cfg, environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
