// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value for the -a and -grpc-address flags.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server (or, for the client, target) HTTP address in format [host]:[port]
//	-grpc-address gRPC address in format [host]:[port]
//	-d database DSN for sequence checkpoints
//	-c, -config path of a JSON config file
//	-max-lease maximum granted lease (e.g. "10m")
//	-sweep-interval reaper interval (e.g. "1s")
//	-shards number of lock shards
//	-request-timeout request timeout (e.g. "30s")
//	-checkpoint-interval sequence checkpoint interval
//	-lease requested lease duration (client)
//	-transport client transport, "http" or "grpc"
//	-objects comma-separated object ids to reference (client)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddr, grpcAddr NetAddress
	var dsn string
	var configPath string
	var maxLease, sweepInterval, requestTimeout, checkpointInterval, leaseValue time.Duration
	var shardCount int
	var transport string
	var objects string
	var logLevel string

	fs := flag.NewFlagSet("dgc", flag.ContinueOnError)
	fs.Var(&httpAddr, "a", "Net address host:port")
	fs.Var(&grpcAddr, "grpc-address", "Net grpc address host:port")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "JSON config file path")
	fs.StringVar(&configPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&maxLease, "max-lease", 0, "Maximum granted lease (e.g., 10m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired lease sweep interval (e.g., 1s)")
	fs.IntVar(&shardCount, "shards", 0, "Number of lock shards")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&checkpointInterval, "checkpoint-interval", 0, "Sequence checkpoint interval")
	fs.DurationVar(&leaseValue, "lease", 0, "Requested lease duration (client)")
	fs.StringVar(&transport, "transport", "", "Client transport: http or grpc")
	fs.StringVar(&objects, "objects", "", "Comma-separated object ids to reference (client)")
	fs.StringVar(&logLevel, "log-level", "", "Client log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		DGC: DGC{
			MaxLeaseDuration: maxLease,
			SweepInterval:    sweepInterval,
			ShardCount:       shardCount,
		},
		Storage: Storage{
			DB: DB{
				DSN: dsn,
			},
		},
		Server: Server{
			HTTPAddress:    httpAddr.String(),
			GRPCAddress:    grpcAddr.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddr.String(),
			GRPCAddress:    grpcAddr.String(),
			RequestTimeout: requestTimeout,
			Transport:      transport,
		},
		Workers: Workers{
			CheckpointInterval: checkpointInterval,
			LeaseValue:         leaseValue,
		},
		Client: Client{
			ObjectIDs: splitList(objects),
			LogLevel:  logLevel,
		},
		JSONFilePath: configPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String renders the address for net.Listen and for URLs. The zero address
// renders empty so that an unset flag does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "localhost:<port>" or "<ip>:<port>" with a positive port.
// Bracketed IPv6 hosts are allowed. The receiver is left untouched on error.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q is not a number", rawPort)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be within 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("host %q is neither localhost nor an IP address", host)
	}

	a.Host, a.Port = host, port
	return nil
}
