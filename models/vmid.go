// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrMalformedVMID is returned when a stored VMID key cannot be decoded.
var ErrMalformedVMID = errors.New("malformed vmid")

// HostAddrLen is the width of the random host discriminator carried by a
// [VMID]. Addresses of any other length are malformed.
const HostAddrLen = 8

// VMID identifies one client process holding remote references.
//
// A VMID is a value: it is never mutated after construction and two VMIDs are
// the same client when [VMID.Equal] reports true. A client that could not
// generate its own identifier sends the zero VMID and receives a fresh one in
// the lease returned by the first dirty call.
type VMID struct {
	// Addr is the random host discriminator, HostAddrLen bytes wide.
	Addr []byte `json:"addr"`

	// UID distinguishes processes sharing the same host discriminator.
	UID UID `json:"uid"`
}

// IsAssigned reports whether v carries a well-formed host discriminator.
// Unassigned and malformed VMIDs never match any stored client.
func (v VMID) IsAssigned() bool {
	return len(v.Addr) == HostAddrLen
}

// Equal compares v and other byte-for-byte. A malformed address on either
// side makes the identifiers unequal.
func (v VMID) Equal(other VMID) bool {
	if !v.IsAssigned() || !other.IsAssigned() {
		return false
	}

	return bytes.Equal(v.Addr, other.Addr) && v.UID == other.UID
}

// Key returns the fixed-width opaque form of v suitable for use as a map key.
// Keys of unassigned VMIDs are empty and must not be stored.
func (v VMID) Key() string {
	if !v.IsAssigned() {
		return ""
	}

	b := make([]byte, 0, HostAddrLen+UIDLen)
	b = append(b, v.Addr...)
	b = v.UID.AppendBinary(b)

	return string(b)
}

func (v VMID) String() string {
	if !v.IsAssigned() {
		return "vmid(unassigned)"
	}

	return hex.EncodeToString(v.Addr) + "/" + v.UID.String()
}

// VMIDFromKey decodes a key produced by [VMID.Key].
func VMIDFromKey(key string) (VMID, error) {
	if len(key) != HostAddrLen+UIDLen {
		return VMID{}, fmt.Errorf("%w: key of %d bytes", ErrMalformedVMID, len(key))
	}

	b := []byte(key)
	return VMID{
		Addr: b[:HostAddrLen:HostAddrLen],
		UID:  uidFromBinary(b[HostAddrLen:]),
	}, nil
}
