// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Lease is the grant returned by a dirty call: the client identified by VMID
// is considered to hold its references for Value milliseconds.
//
// In a dirty request the lease carries the client's VMID (possibly
// unassigned) and the duration it asks for.
type Lease struct {
	VMID  VMID  `json:"vmid"`
	Value int64 `json:"value"`
}

// NewLease builds a Lease for vmid lasting d, truncated to milliseconds.
func NewLease(vmid VMID, d time.Duration) Lease {
	return Lease{VMID: vmid, Value: d.Milliseconds()}
}

// Duration returns the lease value as a time.Duration.
func (l Lease) Duration() time.Duration {
	return time.Duration(l.Value) * time.Millisecond
}
