// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repository whether a failed statement is
// worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors.
	NonRetryable ErrorClassification = iota
	// Retryable errors are transient: lost connections, serialization
	// conflicts between concurrent checkpoint upserts, server restarts.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// retryablePgCodes are single codes outside the always-retryable classes.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.CannotConnectNow:      {},
	pgerrcode.AdminShutdown:         {},
	pgerrcode.CrashShutdown:         {},
	pgerrcode.LockNotAvailable:      {},
	pgerrcode.TooManyConnections:    {},
	pgerrcode.InsufficientResources: {},
	pgerrcode.OutOfMemory:           {},
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// Connection exceptions (class 08) and transaction rollbacks (class 40) are
// retryable as a whole; integrity, data and syntax errors never are.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgerrcode.IsConnectionException(pgErr.Code) || pgerrcode.IsTransactionRollback(pgErr.Code) {
		return Retryable
	}

	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}

	return NonRetryable
}

// postgresError returns the SQLSTATE of err, or "" when err did not come from
// PostgreSQL. It is only used to enrich logs.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
