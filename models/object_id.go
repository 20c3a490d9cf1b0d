// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedObjectID is returned when the text form of an [ObjectID]
// cannot be parsed.
var ErrMalformedObjectID = errors.New("malformed object id")

// ObjectID identifies one exported remote object. Num is allocated by the
// export table, Space is the UID space of the exporting server.
//
// ObjectID is comparable and may be used directly as a map key. Its JSON form
// is the text produced by [ObjectID.String].
type ObjectID struct {
	Num   int64
	Space UID
}

// Bytes returns the fixed-width binary encoding of id.
func (id ObjectID) Bytes() []byte {
	b := make([]byte, 0, 8+UIDLen)
	b = binary.BigEndian.AppendUint64(b, uint64(id.Num))
	return id.Space.AppendBinary(b)
}

// Compare orders ids by Num, then by Space.
func (id ObjectID) Compare(other ObjectID) int {
	return cmp.Or(cmp.Compare(id.Num, other.Num), id.Space.Compare(other.Space))
}

// String returns the text form "<num>@<unique>:<time>:<count>" (hex fields).
func (id ObjectID) String() string {
	return strconv.FormatInt(id.Num, 10) + "@" + id.Space.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ObjectID) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectID(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// ParseObjectID parses the text form produced by [ObjectID.String].
func ParseObjectID(s string) (ObjectID, error) {
	num, space, found := strings.Cut(strings.TrimSpace(s), "@")
	if !found {
		return ObjectID{}, fmt.Errorf("%w: %q", ErrMalformedObjectID, s)
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: %q: %v", ErrMalformedObjectID, s, err)
	}

	parts := strings.Split(space, ":")
	if len(parts) != 3 {
		return ObjectID{}, fmt.Errorf("%w: %q", ErrMalformedObjectID, s)
	}

	unique, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: %q: %v", ErrMalformedObjectID, s, err)
	}
	ts, err := strconv.ParseInt(parts[1], 16, 64)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: %q: %v", ErrMalformedObjectID, s, err)
	}
	count, err := strconv.ParseUint(parts[2], 16, 16)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: %q: %v", ErrMalformedObjectID, s, err)
	}

	return ObjectID{
		Num: n,
		Space: UID{
			Unique: int32(uint32(unique)),
			Time:   ts,
			Count:  int16(uint16(count)),
		},
	}, nil
}
