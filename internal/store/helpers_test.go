// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-dgc/models"

var testSpace = models.UID{Unique: 1, Time: 2, Count: 3}

func testObjectID(num int64) models.ObjectID {
	return models.ObjectID{Num: num, Space: testSpace}
}

func testVMID(b byte) models.VMID {
	return models.VMID{
		Addr: []byte{b, 0, 0, 0, 0, 0, 0, 1},
		UID:  models.UID{Unique: int32(b), Time: 1700000000000, Count: 1},
	}
}
