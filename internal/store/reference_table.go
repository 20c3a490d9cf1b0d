// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

// ReferenceTable tracks, per exported object, which clients hold a lease on
// it and until when.
//
// The table is split into shards selected by the object id. Every operation
// locks exactly one shard, so calls concerning different objects rarely
// contend and a sweep never holds more than one lock at a time.
type ReferenceTable struct {
	shards   []*referenceShard
	maxLease time.Duration
}

type referenceShard struct {
	mu      sync.Mutex
	objects map[models.ObjectID]map[string]holderEntry
}

type holderEntry struct {
	vmid   models.VMID
	expiry time.Time
}

// NewReferenceTable creates a table with shardCount shards. Every granted
// lease is capped at maxLease; a non-positive maxLease disables the cap.
func NewReferenceTable(shardCount int, maxLease time.Duration) *ReferenceTable {
	if shardCount < 1 {
		shardCount = 1
	}

	shards := make([]*referenceShard, shardCount)
	for i := range shards {
		shards[i] = &referenceShard{objects: make(map[models.ObjectID]map[string]holderEntry)}
	}

	return &ReferenceTable{shards: shards, maxLease: maxLease}
}

func (t *ReferenceTable) shard(objID models.ObjectID) *referenceShard {
	return t.shards[shardIndex(objID.Bytes(), len(t.shards))]
}

// GrantedLease returns the lease the table grants for a request of
// requested: never more than asked for and never more than the maximum.
func (t *ReferenceTable) GrantedLease(requested time.Duration) (time.Duration, error) {
	if requested < 0 {
		return 0, ErrNegativeLeaseDuration
	}
	if t.maxLease > 0 && requested > t.maxLease {
		return t.maxLease, nil
	}

	return requested, nil
}

// AddOrRenew inserts vmid as a holder of objID, or refreshes its expiry,
// so that it expires at now plus the granted lease.
func (t *ReferenceTable) AddOrRenew(objID models.ObjectID, vmid models.VMID, requested time.Duration, now time.Time) (time.Duration, error) {
	granted, err := t.GrantedLease(requested)
	if err != nil {
		return 0, err
	}

	s := t.shard(objID)
	s.mu.Lock()
	defer s.mu.Unlock()

	holders, ok := s.objects[objID]
	if !ok {
		holders = make(map[string]holderEntry, 1)
		s.objects[objID] = holders
	}
	holders[vmid.Key()] = holderEntry{vmid: vmid, expiry: now.Add(granted)}

	return granted, nil
}

// Remove drops vmid from the holders of objID. It reports true only when
// this call removed the last holder; removing an absent holder is a no-op.
func (t *ReferenceTable) Remove(objID models.ObjectID, vmid models.VMID) bool {
	s := t.shard(objID)
	s.mu.Lock()
	defer s.mu.Unlock()

	holders, ok := s.objects[objID]
	if !ok {
		return false
	}

	key := vmid.Key()
	if _, held := holders[key]; !held {
		return false
	}

	delete(holders, key)
	if len(holders) == 0 {
		delete(s.objects, objID)
		return true
	}

	return false
}

// IsEmpty reports whether no holder of objID has a lease running past now.
func (t *ReferenceTable) IsEmpty(objID models.ObjectID, now time.Time) bool {
	s := t.shard(objID)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.objects[objID] {
		if h.expiry.After(now) {
			return false
		}
	}

	return true
}

// Holders returns a snapshot of the holders of objID ordered by expiry.
func (t *ReferenceTable) Holders(objID models.ObjectID) []models.Holder {
	s := t.shard(objID)
	s.mu.Lock()
	holders := make([]models.Holder, 0, len(s.objects[objID]))
	for _, h := range s.objects[objID] {
		holders = append(holders, models.Holder{VMID: h.vmid, Expiry: h.expiry})
	}
	s.mu.Unlock()

	sort.Slice(holders, func(i, j int) bool {
		return holders[i].Expiry.Before(holders[j].Expiry)
	})

	return holders
}

// Len returns the number of objects with at least one holder.
func (t *ReferenceTable) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.Lock()
		n += len(s.objects)
		s.mu.Unlock()
	}

	return n
}

// SweepExpired removes every lease that expired at or before now. Objects
// left without holders are dropped and reported in Emptied.
func (t *ReferenceTable) SweepExpired(now time.Time) models.SweepResult {
	var result models.SweepResult

	for _, s := range t.shards {
		s.sweep(now, &result)
	}

	return result
}

func (s *referenceShard) sweep(now time.Time, result *models.SweepResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for objID, holders := range s.objects {
		for key, h := range holders {
			if h.expiry.After(now) {
				continue
			}
			delete(holders, key)
			result.Removed = append(result.Removed, models.Reference{ObjectID: objID, VMID: h.vmid})
		}

		if len(holders) == 0 {
			delete(s.objects, objID)
			result.Emptied = append(result.Emptied, objID)
		}
	}
}
