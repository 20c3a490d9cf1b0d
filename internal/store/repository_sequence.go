// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/models"
)

// maxAttempts bounds how often an operation failing with a retryable
// database error is attempted.
const maxAttempts = 3

// sequenceRepository is the SQL implementation of [SequenceRepository]. It
// works against PostgreSQL and SQLite alike; the dialect differences live in
// the [DB] it is given.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type sequenceRepository struct {
	db      *DB
	logger  *logger.Logger
	backoff time.Duration
}

// NewSequenceRepository constructs a [SequenceRepository] backed by db.
func NewSequenceRepository(db *DB, logger *logger.Logger) SequenceRepository {
	logger.Debug().Msg("creating sequence repository")
	return &sequenceRepository{
		db:      db,
		logger:  logger,
		backoff: 100 * time.Millisecond,
	}
}

// SaveMarks upserts marks in batches inside a single transaction.
func (r *sequenceRepository) SaveMarks(ctx context.Context, marks []models.SequenceMark) error {
	if len(marks) == 0 {
		return nil
	}

	return r.withRetry(ctx, "sequenceRepository.SaveMarks", func() error {
		return r.saveMarks(ctx, marks)
	})
}

func (r *sequenceRepository) saveMarks(ctx context.Context, marks []models.SequenceMark) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for start := 0; start < len(marks); start += saveMarksBatchSize {
		end := min(start+saveMarksBatchSize, len(marks))

		query, args, err := buildSaveMarksQuery(r.db.builder(), marks[start:end])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// LoadMarks reads every stored mark. Rows that cannot be decoded are
// skipped and logged.
func (r *sequenceRepository) LoadMarks(ctx context.Context) ([]models.SequenceMark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadMarksQuery(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sequenceRepository.LoadMarks").
			Str("pg_code", postgresError(err)).
			Msg("failed to query sequence marks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var marks []models.SequenceMark
	for rows.Next() {
		var (
			vmid, objectID string
			mark           models.SequenceMark
			lastSeenMs     int64
		)

		if err = rows.Scan(&vmid, &objectID, &mark.SequenceNum, &mark.Keep, &lastSeenMs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if mark.VMID, err = decodeVMID(vmid); err != nil {
			log.Warn().Err(err).Str("vmid", vmid).Msg("skipping sequence mark with malformed vmid")
			continue
		}
		if mark.ObjectID, err = models.ParseObjectID(objectID); err != nil {
			log.Warn().Err(err).Str("object_id", objectID).Msg("skipping sequence mark with malformed object id")
			continue
		}
		mark.LastSeen = time.UnixMilli(lastSeenMs)

		marks = append(marks, mark)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return marks, nil
}

// DeleteMarksBefore removes marks that outlived their retention.
func (r *sequenceRepository) DeleteMarksBefore(ctx context.Context, cutoff, keepCutoff time.Time) (int64, error) {
	query, args, err := buildDeleteMarksQuery(r.db.builder(), cutoff, keepCutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.withRetry(ctx, "sequenceRepository.DeleteMarksBefore", func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		deleted, execErr = res.RowsAffected()
		return execErr
	})

	return deleted, err
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// runs out of attempts.
func (r *sequenceRepository) withRetry(ctx context.Context, funcName string, op func() error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if r.db.classify(err) != Retryable || attempt == maxAttempts {
			break
		}

		log.Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff * time.Duration(attempt)):
		}
	}

	log.Err(err).
		Str("func", funcName).
		Str("pg_code", postgresError(err)).
		Msg("database operation failed")
	return err
}
