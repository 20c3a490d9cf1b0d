// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export holds the server's table of exported objects.
//
// An export lives while it is pinned locally or held by at least one remote
// client. The collector calls [Table.Reclaim] once the last remote holder is
// gone; permanent and pinned exports survive that call.
package export
