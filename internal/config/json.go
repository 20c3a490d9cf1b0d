// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	DGC struct {
		MaxLeaseDuration  Duration `json:"max_lease_duration"`
		SweepInterval     Duration `json:"sweep_interval"`
		ShardCount        int      `json:"shard_count"`
		SequenceRetention Duration `json:"sequence_retention"`
		StrongRetention   Duration `json:"strong_retention"`
	} `json:"dgc,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Transport      string   `json:"transport"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CheckpointInterval Duration `json:"checkpoint_interval"`
		LeaseValue         Duration `json:"lease_value"`
		RetryInterval      Duration `json:"retry_interval"`
		CleanRetries       int      `json:"clean_retries"`
	} `json:"workers,omitempty"`

	Client struct {
		ObjectIDs []string `json:"object_ids"`
		LogLevel  string   `json:"log_level"`
	} `json:"client,omitempty"`
}

// parseJSON reads the file at path into a config layer. Its JSONFilePath is
// left empty so the file cannot name another one.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		DGC: DGC{
			MaxLeaseDuration:  time.Duration(jsonCfg.DGC.MaxLeaseDuration),
			SweepInterval:     time.Duration(jsonCfg.DGC.SweepInterval),
			ShardCount:        jsonCfg.DGC.ShardCount,
			SequenceRetention: time.Duration(jsonCfg.DGC.SequenceRetention),
			StrongRetention:   time.Duration(jsonCfg.DGC.StrongRetention),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Transport:      jsonCfg.Adapter.Transport,
		},
		Workers: Workers{
			CheckpointInterval: time.Duration(jsonCfg.Workers.CheckpointInterval),
			LeaseValue:         time.Duration(jsonCfg.Workers.LeaseValue),
			RetryInterval:      time.Duration(jsonCfg.Workers.RetryInterval),
			CleanRetries:       jsonCfg.Workers.CleanRetries,
		},
		Client: Client{
			ObjectIDs: jsonCfg.Client.ObjectIDs,
			LogLevel:  jsonCfg.Client.LogLevel,
		},
	}

	return cfg, nil
}

// Duration reads either a Go duration string ("90s", "10m") or a number of
// nanoseconds from JSON, and writes the string form.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos float64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or a number: %w", err)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
