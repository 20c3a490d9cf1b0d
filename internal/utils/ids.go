// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-dgc/models"
	"github.com/google/uuid"
)

// UIDGenerator hands out process-unique [models.UID] values.
//
// The Unique part is drawn once from the random source, Time starts at the
// generator's creation time and Count runs through the whole int16 range.
// When the counter wraps, Time is moved forward so that no UID repeats.
type UIDGenerator struct {
	mu     sync.Mutex
	unique int32
	time   int64
	count  int16
	now    func() time.Time
}

// NewUIDGenerator creates a generator seeded from rnd. A nil rnd uses the
// system CSPRNG through uuid.
func NewUIDGenerator(rnd io.Reader) (*UIDGenerator, error) {
	seed, err := newRandomUUID(rnd)
	if err != nil {
		return nil, fmt.Errorf("seed uid generator: %w", err)
	}

	unique := int32(uint32(seed[0])<<24 | uint32(seed[1])<<16 | uint32(seed[2])<<8 | uint32(seed[3]))

	return &UIDGenerator{
		unique: unique,
		time:   time.Now().UnixMilli(),
		count:  math.MinInt16,
		now:    time.Now,
	}, nil
}

// Next returns a UID never returned before by this generator.
func (g *UIDGenerator) Next() models.UID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.count == math.MaxInt16 {
		// counter exhausted for this millisecond stamp
		g.time = max(g.now().UnixMilli(), g.time+1)
		g.count = math.MinInt16
	}
	uid := models.UID{Unique: g.unique, Time: g.time, Count: g.count}
	g.count++

	return uid
}

// VMIDGenerator builds [models.VMID] values: a host discriminator fixed for
// the generator plus a fresh UID per call.
type VMIDGenerator struct {
	addr []byte
	uids *UIDGenerator
}

// NewVMIDGenerator draws the host discriminator from rnd (nil means the
// system CSPRNG) and allocates UIDs from uids.
func NewVMIDGenerator(rnd io.Reader, uids *UIDGenerator) (*VMIDGenerator, error) {
	id, err := newRandomUUID(rnd)
	if err != nil {
		return nil, fmt.Errorf("generate host discriminator: %w", err)
	}

	addr := make([]byte, models.HostAddrLen)
	copy(addr, id[len(id)-models.HostAddrLen:])

	return &VMIDGenerator{addr: addr, uids: uids}, nil
}

// NewVMID returns a VMID that no other call of any generator is expected to
// return.
func (g *VMIDGenerator) NewVMID() models.VMID {
	addr := make([]byte, len(g.addr))
	copy(addr, g.addr)

	return models.VMID{Addr: addr, UID: g.uids.Next()}
}

func newRandomUUID(rnd io.Reader) (uuid.UUID, error) {
	if rnd == nil {
		return uuid.NewRandom()
	}
	return uuid.NewRandomFromReader(rnd)
}
