// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidDGCConfigs indicates an unusable lease policy (for example,
	// a non-positive sweep interval or a retention shorter than a lease).
	ErrInvalidDGCConfigs = errors.New("invalid dgc configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address for the selected transport).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero checkpoint interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrNoObjectIDs indicates that the client was started without any
	// object to reference.
	ErrNoObjectIDs = errors.New("no object ids to reference")
)
