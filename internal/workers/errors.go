// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrInvalidInterval is returned when a periodic worker is configured with a
// non-positive interval.
var ErrInvalidInterval = errors.New("worker interval must be positive")
