// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrNegativeLeaseDuration is returned by the reference table when a lease
// shorter than zero is requested.
var ErrNegativeLeaseDuration = errors.New("negative lease duration requested")

// Errors of the sequence checkpoint repository. Driver errors are wrapped
// with them, so callers match with [errors.Is] and still see the cause.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	// ErrCommitingTransaction means the checkpoint batch was rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRows         = errors.New("failed to scan sequence mark rows")
)
