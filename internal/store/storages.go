// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
)

// Storages groups the server-side state of the collector.
type Storages struct {
	References *ReferenceTable
	Sequences  *SequenceTable

	// SequenceRepository is nil when no database is configured.
	SequenceRepository SequenceRepository

	db *DB
}

// NewStorages builds the in-memory tables and, when a DSN is configured,
// connects and migrates the checkpoint database.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		References: NewReferenceTable(cfg.DGC.ShardCount, cfg.DGC.MaxLeaseDuration),
		Sequences:  NewSequenceTable(cfg.DGC.ShardCount),
	}

	if cfg.Storage.DB.DSN == "" {
		log.Info().Msg("no database configured, sequence checkpointing disabled")
		return storages, nil
	}

	db, err := NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to checkpoint database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating checkpoint database: %w", err)
	}

	storages.db = db
	storages.SequenceRepository = NewSequenceRepository(db, log)

	return storages, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
