// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DirtyRequest asserts that the client still references ObjectIDs.
type DirtyRequest struct {
	// ObjectIDs are the objects the client asks to keep alive.
	ObjectIDs []ObjectID `json:"object_ids"`

	// SequenceNum orders this call against other calls from the same client.
	SequenceNum int64 `json:"sequence_num"`

	// Lease carries the client's VMID (possibly unassigned) and the lease
	// duration it requests.
	Lease Lease `json:"lease"`
}

// DirtyResponse is the server's answer to a [DirtyRequest].
type DirtyResponse struct {
	// Lease is the granted lease. Its VMID is the client's identity from now
	// on; it differs from the requested one only when the client sent an
	// unassigned VMID.
	Lease Lease `json:"lease"`

	// Failures lists the ids that could not be leased. Ids absent from this
	// list were either leased or silently ignored as stale.
	Failures []ObjectFailure `json:"failures,omitempty"`
}

// ObjectFailure reports why a single id of a batched dirty call failed.
type ObjectFailure struct {
	ObjectID ObjectID `json:"object_id"`
	Reason   string   `json:"reason"`
}

// CleanRequest tells the server the client no longer references ObjectIDs.
type CleanRequest struct {
	ObjectIDs   []ObjectID `json:"object_ids"`
	SequenceNum int64      `json:"sequence_num"`
	VMID        VMID       `json:"vmid"`

	// Strong is set when a dirty call for these ids failed; the server then
	// applies the clean regardless of ordering and retains the sequence slot.
	Strong bool `json:"strong"`
}
