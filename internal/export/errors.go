// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import "errors"

var (
	// ErrObjectNotExported is returned for ids the table does not know.
	ErrObjectNotExported = errors.New("object not exported")
	// ErrNotPinned is returned when unpinning an export with no local
	// references left.
	ErrNotPinned = errors.New("export has no local references")
)
