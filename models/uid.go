// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"encoding/binary"
	"fmt"
)

// UIDLen is the fixed width of a binary-encoded [UID].
const UIDLen = 4 + 8 + 2

// UID is an identifier unique within the host that generated it.
//
// Unique is chosen once per process, Time is the generator's start time in
// milliseconds and Count is a per-process counter. The zero value is the
// "unassigned" UID.
type UID struct {
	Unique int32 `json:"unique"`
	Time   int64 `json:"time"`
	Count  int16 `json:"count"`
}

// IsZero reports whether u is the unassigned UID.
func (u UID) IsZero() bool {
	return u == UID{}
}

// Compare orders UIDs numerically by Unique, then Time, then Count.
func (u UID) Compare(other UID) int {
	return cmp.Or(
		cmp.Compare(u.Unique, other.Unique),
		cmp.Compare(u.Time, other.Time),
		cmp.Compare(u.Count, other.Count),
	)
}

// AppendBinary appends the fixed-width big-endian encoding of u to b.
func (u UID) AppendBinary(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(u.Unique))
	b = binary.BigEndian.AppendUint64(b, uint64(u.Time))
	b = binary.BigEndian.AppendUint16(b, uint16(u.Count))
	return b
}

// uidFromBinary decodes the first UIDLen bytes of b.
func uidFromBinary(b []byte) UID {
	return UID{
		Unique: int32(binary.BigEndian.Uint32(b[0:4])),
		Time:   int64(binary.BigEndian.Uint64(b[4:12])),
		Count:  int16(binary.BigEndian.Uint16(b[12:14])),
	}
}

func (u UID) String() string {
	return fmt.Sprintf("%x:%x:%x", uint32(u.Unique), u.Time, uint16(u.Count))
}
