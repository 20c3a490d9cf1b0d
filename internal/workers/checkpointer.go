// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/store"
)

// finalCheckpointTimeout bounds the checkpoint written on shutdown.
const finalCheckpointTimeout = 5 * time.Second

// SequenceCheckpointer restores sequence marks from the database on start and
// writes them back periodically and once more on shutdown.
type SequenceCheckpointer struct {
	sequences  SequenceMarks
	repository store.SequenceRepository
	interval   time.Duration
	retention  Retention

	now    func() time.Time
	logger *logger.Logger
}

// NewSequenceCheckpointer constructs a [SequenceCheckpointer] writing every
// interval.
func NewSequenceCheckpointer(sequences SequenceMarks, repository store.SequenceRepository, interval time.Duration, retention Retention, logger *logger.Logger) (*SequenceCheckpointer, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: checkpoint interval %s", ErrInvalidInterval, interval)
	}

	return &SequenceCheckpointer{
		sequences:  sequences,
		repository: repository,
		interval:   interval,
		retention:  retention,
		now:        time.Now,
		logger:     logger.WithComponent("sequence_checkpointer"),
	}, nil
}

// Run implements [Worker]. Failed checkpoints are logged and retried on the
// next tick. Marks are expected to have been restored before Run.
func (c *SequenceCheckpointer) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalCheckpointTimeout)
			defer cancel()

			if err := c.Checkpoint(finalCtx); err != nil {
				c.logger.Err(err).Msg("final checkpoint failed")
			}
			return nil
		case <-ticker.C:
			if err := c.Checkpoint(ctx); err != nil {
				c.logger.Err(err).Msg("checkpoint failed")
			}
		}
	}
}

// Restore loads stored marks into the sequence table.
func (c *SequenceCheckpointer) Restore(ctx context.Context) error {
	marks, err := c.repository.LoadMarks(ctx)
	if err != nil {
		return fmt.Errorf("error restoring sequence marks: %w", err)
	}

	c.sequences.Restore(marks)
	c.logger.Info().Int("marks", len(marks)).Msg("sequence marks restored")

	return nil
}

// Checkpoint writes the current marks and deletes those past retention.
func (c *SequenceCheckpointer) Checkpoint(ctx context.Context) error {
	marks := c.sequences.Snapshot()
	if err := c.repository.SaveMarks(ctx, marks); err != nil {
		return fmt.Errorf("error saving sequence marks: %w", err)
	}

	now := c.now()
	deleted, err := c.repository.DeleteMarksBefore(ctx, now.Add(-c.retention.Sequence), now.Add(-c.retention.Strong))
	if err != nil {
		return fmt.Errorf("error deleting stale sequence marks: %w", err)
	}

	c.logger.Debug().Int("saved", len(marks)).Int64("deleted", deleted).Msg("sequence marks checkpointed")

	return nil
}
