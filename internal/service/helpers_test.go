// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

var (
	testSpace = models.UID{Unique: 11, Time: 1700000000000, Count: 1}
	// t0 is close to the wall clock, which the export table reads.
	t0 = time.Now().Truncate(time.Millisecond)
)

func testVMID(b byte) models.VMID {
	return models.VMID{
		Addr: []byte{b, 1, 2, 3, 4, 5, 6, 7},
		UID:  models.UID{Unique: int32(b), Time: 1700000000000, Count: 1},
	}
}

func testObjectID(num int64) models.ObjectID {
	return models.ObjectID{Num: num, Space: testSpace}
}

// clock is a manually advanced time source.
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }
