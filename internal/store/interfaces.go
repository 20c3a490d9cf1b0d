// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SequenceRepository persists sequence marks so that stale calls stay
// rejected across server restarts.
type SequenceRepository interface {
	// SaveMarks upserts marks. A stored sequence number is never lowered.
	SaveMarks(ctx context.Context, marks []models.SequenceMark) error
	// LoadMarks returns every stored mark.
	LoadMarks(ctx context.Context) ([]models.SequenceMark, error)
	// DeleteMarksBefore removes marks last seen before cutoff, or before
	// keepCutoff for marks left by a strong clean.
	DeleteMarksBefore(ctx context.Context, cutoff, keepCutoff time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
