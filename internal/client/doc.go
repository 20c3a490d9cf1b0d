// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the DGC client process lifecycle.
//
// It references the configured remote objects, keeps their leases alive in
// the background and releases every reference before the process exits.
package client
