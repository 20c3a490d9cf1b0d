// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reference is a single (object, client) pair of the server-side reference
// table.
type Reference struct {
	ObjectID ObjectID
	VMID     VMID
}

// Holder is a client holding a lease on an object, with the lease expiry.
type Holder struct {
	VMID   VMID      `json:"vmid"`
	Expiry time.Time `json:"expiry"`
}

// SweepResult is what a single expiry sweep removed.
type SweepResult struct {
	// Removed lists every expired reference that was dropped.
	Removed []Reference

	// Emptied lists objects left with no holders after the sweep.
	Emptied []ObjectID
}

// SequenceMark is the highest sequence number accepted from a client for one
// object. Marks are checkpointed so stale calls keep being rejected across
// server restarts.
type SequenceMark struct {
	VMID        VMID
	ObjectID    ObjectID
	SequenceNum int64

	// Keep is set once a strong clean has been applied for the pair.
	Keep bool

	// LastSeen is the time of the last call concerning the pair.
	LastSeen time.Time
}
