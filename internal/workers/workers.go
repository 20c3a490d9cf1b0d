// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/store"
	"golang.org/x/sync/errgroup"
)

// Workers runs a set of [Worker]s until the first of them fails or the
// context is cancelled.
type Workers struct {
	workers []Worker
}

// restorer is a worker with state to load before the server takes calls.
type restorer interface {
	Restore(ctx context.Context) error
}

// NewWorkers builds the server's workers: the reaper always, the sequence
// checkpointer only when a database is configured.
func NewWorkers(storages *store.Storages, reclaimer Reclaimer, cfg *config.StructuredConfig, logger *logger.Logger) (*Workers, error) {
	retention := Retention{Sequence: cfg.DGC.SequenceRetention, Strong: cfg.DGC.StrongRetention}

	reaper, err := NewReaper(storages.References, storages.Sequences, reclaimer, cfg.DGC.SweepInterval, retention, logger)
	if err != nil {
		return nil, err
	}

	w := &Workers{workers: []Worker{reaper}}

	if storages.SequenceRepository != nil {
		checkpointer, err := NewSequenceCheckpointer(storages.Sequences, storages.SequenceRepository, cfg.Workers.CheckpointInterval, retention, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, checkpointer)
	}

	return w, nil
}

// Run implements [Worker].
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}

// Restore loads the persisted state of every worker that has one. It is
// called once, before the transports start accepting calls.
func (w *Workers) Restore(ctx context.Context) error {
	for _, worker := range w.workers {
		if r, ok := worker.(restorer); ok {
			if err := r.Restore(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}
