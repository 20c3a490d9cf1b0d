// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the server's background workers and a Workers
// aggregate that runs them together.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that stops
// because ctx was cancelled returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// ExpiredReferences is the part of the reference table the reaper sweeps.
type ExpiredReferences interface {
	SweepExpired(now time.Time) models.SweepResult
}

// SequenceMarks is the part of the sequence table the workers maintain.
type SequenceMarks interface {
	Prune(now time.Time, retention, keepRetention time.Duration) int
	Snapshot() []models.SequenceMark
	Restore(marks []models.SequenceMark)
}

// Reclaimer is notified of objects left without remote holders.
type Reclaimer interface {
	Reclaim(ctx context.Context, id models.ObjectID) error
}
