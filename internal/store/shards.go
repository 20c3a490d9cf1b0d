// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// shardIndex maps key onto one of n shards. The blake3 digest spreads
// sequential object numbers evenly regardless of n.
func shardIndex(key []byte, n int) int {
	if n <= 1 {
		return 0
	}

	sum := blake3.Sum256(key)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
