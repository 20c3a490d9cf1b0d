// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is shared by the DGC server and the lease-renewing client;
// each binary reads the sections it needs. Environment variable names are the
// section's envPrefix followed by the field's env tag.
type StructuredConfig struct {
	// DGC holds the lease policy of the server-side collector.
	DGC DGC `envPrefix:"DGC_"`

	// Storage holds the optional database used to checkpoint sequence
	// numbers across restarts.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen addresses of the server binary.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals and limits of the background jobs on both sides.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings used only by the client binary.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath names a JSON file layered over env and flags. Set with
	// CONFIG, -c or -config.
	JSONFilePath string `env:"CONFIG"`
}

// DGC holds the server-side lease policy.
type DGC struct {
	// MaxLeaseDuration caps every granted lease. Requests for longer leases
	// are granted this value instead.
	// Env: DGC_MAX_LEASE_DURATION
	MaxLeaseDuration time.Duration `env:"MAX_LEASE_DURATION"`

	// SweepInterval is how often the reaper removes expired leases. It should
	// be short compared to the shortest lease clients are granted.
	// Env: DGC_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// ShardCount is the number of lock shards of the reference and sequence
	// tables.
	// Env: DGC_SHARD_COUNT
	ShardCount int `env:"SHARD_COUNT"`

	// SequenceRetention is how long an idle sequence mark is remembered.
	// Env: DGC_SEQUENCE_RETENTION
	SequenceRetention time.Duration `env:"SEQUENCE_RETENTION"`

	// StrongRetention is how long a mark set by a strong clean is remembered.
	// Env: DGC_STRONG_RETENTION
	StrongRetention time.Duration `env:"STRONG_RETENTION"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sequence checkpoint database.
type DB struct {
	// DSN selects the backend: a "postgres://" URL uses PostgreSQL through
	// pgx, anything else is treated as a SQLite file path. Empty disables
	// checkpointing.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server configures the inbound transports. An empty address disables the
// corresponding transport.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds one dirty, clean or export request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the server's HTTP endpoint.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the server's gRPC endpoint.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds each outbound dirty or clean call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Transport selects the protocol: "http" (default) or "grpc".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`
}

// Workers configures the server's checkpointer and the client's renew job.
type Workers struct {
	// CheckpointInterval is how often the server writes sequence marks to
	// the database.
	// Env: WORKERS_CHECKPOINT_INTERVAL
	CheckpointInterval time.Duration `env:"CHECKPOINT_INTERVAL"`

	// LeaseValue is the lease duration the client asks for.
	// Env: WORKERS_LEASE_VALUE
	LeaseValue time.Duration `env:"LEASE_VALUE"`

	// RetryInterval is the client's pause after a failed call.
	// Env: WORKERS_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`

	// CleanRetries is how many times a failed clean call is re-sent.
	// Env: WORKERS_CLEAN_RETRIES
	CleanRetries int `env:"CLEAN_RETRIES"`
}

// Client holds settings of the client binary.
type Client struct {
	// ObjectIDs are the remote objects the client references at start, in
	// the "<num>@<space>" text form.
	// Env: CLIENT_OBJECT_IDS (comma separated)
	ObjectIDs []string `env:"OBJECT_IDS" envSeparator:","`

	// LogLevel is the minimum level written by the client logger.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetStructuredConfig layers env, then flags, then the JSON file named by
// either of them. A non-zero field of a later layer overrides earlier ones.
// Defaults fill what is still zero and the result is validated.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
}
