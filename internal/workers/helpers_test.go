// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-dgc/models"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	testSpace = models.UID{Unique: 5, Time: 1700000000000, Count: 1}
	t0        = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func testObjectID(num int64) models.ObjectID {
	return models.ObjectID{Num: num, Space: testSpace}
}

func testVMID(b byte) models.VMID {
	return models.VMID{
		Addr: []byte{b, 0, 0, 0, 0, 0, 0, 1},
		UID:  models.UID{Unique: int32(b), Time: 1700000000000, Count: 1},
	}
}
