// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-dgc/internal/export"
	"github.com/MKhiriev/go-dgc/internal/store"
)

var (
	// ErrNegativeLeaseDuration is returned by Dirty when the requested lease
	// is shorter than zero.
	ErrNegativeLeaseDuration = store.ErrNegativeLeaseDuration

	// ErrObjectNotExported is returned for ids the server does not export.
	ErrObjectNotExported = export.ErrObjectNotExported

	// ErrNotPinned is returned when unpinning an export nobody pins.
	ErrNotPinned = export.ErrNotPinned

	// ErrValidationNoExportName is returned when an export request has no
	// name.
	ErrValidationNoExportName = errors.New("no export name provided")
)

// ReasonNotExported is the failure reason reported for ids of a dirty call
// that the server does not export.
const ReasonNotExported = "object not exported"
