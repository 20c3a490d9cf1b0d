// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/models"
)

// Retention holds how long idle sequence marks are remembered.
type Retention struct {
	Sequence time.Duration
	Strong   time.Duration
}

// Reaper periodically drops expired leases, asks the reclaimer to unexport
// objects left without holders and prunes idle sequence marks.
type Reaper struct {
	references ExpiredReferences
	sequences  SequenceMarks
	reclaimer  Reclaimer
	interval   time.Duration
	retention  Retention

	now    func() time.Time
	logger *logger.Logger
}

// NewReaper constructs a [Reaper] sweeping every interval.
func NewReaper(references ExpiredReferences, sequences SequenceMarks, reclaimer Reclaimer, interval time.Duration, retention Retention, logger *logger.Logger) (*Reaper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: reaper interval %s", ErrInvalidInterval, interval)
	}

	return &Reaper{
		references: references,
		sequences:  sequences,
		reclaimer:  reclaimer,
		interval:   interval,
		retention:  retention,
		now:        time.Now,
		logger:     logger.WithComponent("reaper"),
	}, nil
}

// Run implements [Worker].
func (r *Reaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("reaper started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("reaper stopped")
			return nil
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep runs one reaper cycle.
func (r *Reaper) Sweep(ctx context.Context) {
	now := r.now()

	result := r.references.SweepExpired(now)
	if len(result.Removed) > 0 {
		r.logger.Debug().
			Int("removed", len(result.Removed)).
			Int("emptied", len(result.Emptied)).
			Msg("expired leases removed")
	}

	for _, id := range result.Emptied {
		r.reclaim(ctx, id)
	}

	if r.sequences != nil {
		if pruned := r.sequences.Prune(now, r.retention.Sequence, r.retention.Strong); pruned > 0 {
			r.logger.Debug().Int("pruned", pruned).Msg("idle sequence marks pruned")
		}
	}
}

func (r *Reaper) reclaim(ctx context.Context, id models.ObjectID) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Str("object_id", id.String()).Msg("reclaim panicked")
		}
	}()

	if err := r.reclaimer.Reclaim(ctx, id); err != nil {
		r.logger.Warn().Err(err).Str("object_id", id.String()).Msg("reclaim failed")
	}
}
