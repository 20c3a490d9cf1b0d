// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/binary"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/MKhiriev/go-dgc/models"
)

// objectLockStripes is the number of mutexes objectLocks spreads object ids
// over.
const objectLockStripes = 64

// objectLocks serializes dirty and clean calls concerning one object, so
// that a call's sequence check and the holder change it leads to are applied
// as one step. Ids are striped over a fixed set of mutexes; at most one
// stripe is held at a time.
type objectLocks struct {
	stripes [objectLockStripes]sync.Mutex
}

func (l *objectLocks) lock(id models.ObjectID) func() {
	sum := blake3.Sum256(id.Bytes())
	m := &l.stripes[binary.BigEndian.Uint64(sum[:8])%objectLockStripes]
	m.Lock()
	return m.Unlock
}
