// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

// SequenceTable remembers, per client and object, the highest sequence
// number the server has accepted. It rejects calls that arrive out of order
// so a delayed dirty can never resurrect a reference a later clean dropped.
//
// Marks never decrease. They are forgotten only by [SequenceTable.Prune],
// long after any call that could still be in flight.
type SequenceTable struct {
	shards []*sequenceShard
}

type sequenceShard struct {
	mu      sync.Mutex
	clients map[string]*clientMarks
}

type clientMarks struct {
	vmid  models.VMID
	marks map[models.ObjectID]*sequenceMark
}

type sequenceMark struct {
	seq      int64
	keep     bool
	lastSeen time.Time
}

// NewSequenceTable creates a table with shardCount shards keyed by client.
func NewSequenceTable(shardCount int) *SequenceTable {
	if shardCount < 1 {
		shardCount = 1
	}

	shards := make([]*sequenceShard, shardCount)
	for i := range shards {
		shards[i] = &sequenceShard{clients: make(map[string]*clientMarks)}
	}

	return &SequenceTable{shards: shards}
}

func (t *SequenceTable) shard(key string) *sequenceShard {
	return t.shards[shardIndex([]byte(key), len(t.shards))]
}

// Accept decides whether a call from vmid about objID carrying seq should
// be applied, and records seq when it is.
//
// A strong call is always applied and leaves the stored mark at the larger
// of the two numbers. Any other call is applied only when seq is above the
// stored mark, or when nothing is stored yet.
func (t *SequenceTable) Accept(vmid models.VMID, objID models.ObjectID, seq int64, strong bool, now time.Time) bool {
	key := vmid.Key()
	s := t.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[key]
	if !ok {
		client = &clientMarks{vmid: vmid, marks: make(map[models.ObjectID]*sequenceMark)}
		s.clients[key] = client
	}

	m, ok := client.marks[objID]
	if !ok {
		client.marks[objID] = &sequenceMark{seq: seq, keep: strong, lastSeen: now}
		return true
	}

	if strong {
		m.seq = max(m.seq, seq)
		m.keep = true
		m.lastSeen = now
		return true
	}

	if seq <= m.seq {
		return false
	}

	m.seq = seq
	m.keep = false
	m.lastSeen = now
	return true
}

// Mark returns the stored mark for the pair, if any.
func (t *SequenceTable) Mark(vmid models.VMID, objID models.ObjectID) (int64, bool) {
	key := vmid.Key()
	s := t.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[key]
	if !ok {
		return 0, false
	}
	m, ok := client.marks[objID]
	if !ok {
		return 0, false
	}

	return m.seq, true
}

// Prune forgets marks not touched for longer than retention, or
// keepRetention for marks left by a strong clean. It returns how many
// marks were dropped.
func (t *SequenceTable) Prune(now time.Time, retention, keepRetention time.Duration) int {
	pruned := 0

	for _, s := range t.shards {
		s.mu.Lock()
		for key, client := range s.clients {
			for objID, m := range client.marks {
				limit := retention
				if m.keep {
					limit = keepRetention
				}
				if now.Sub(m.lastSeen) > limit {
					delete(client.marks, objID)
					pruned++
				}
			}
			if len(client.marks) == 0 {
				delete(s.clients, key)
			}
		}
		s.mu.Unlock()
	}

	return pruned
}

// Snapshot copies every stored mark.
func (t *SequenceTable) Snapshot() []models.SequenceMark {
	var marks []models.SequenceMark

	for _, s := range t.shards {
		s.mu.Lock()
		for _, client := range s.clients {
			for objID, m := range client.marks {
				marks = append(marks, models.SequenceMark{
					VMID:        client.vmid,
					ObjectID:    objID,
					SequenceNum: m.seq,
					Keep:        m.keep,
					LastSeen:    m.lastSeen,
				})
			}
		}
		s.mu.Unlock()
	}

	return marks
}

// Restore merges previously saved marks into the table. A restored mark
// never lowers one already present.
func (t *SequenceTable) Restore(marks []models.SequenceMark) {
	for _, mark := range marks {
		if !mark.VMID.IsAssigned() {
			continue
		}

		key := mark.VMID.Key()
		s := t.shard(key)
		s.mu.Lock()

		client, ok := s.clients[key]
		if !ok {
			client = &clientMarks{vmid: mark.VMID, marks: make(map[models.ObjectID]*sequenceMark)}
			s.clients[key] = client
		}

		if m, ok := client.marks[mark.ObjectID]; ok {
			if mark.SequenceNum > m.seq {
				m.seq = mark.SequenceNum
				m.keep = mark.Keep
			}
			if mark.LastSeen.After(m.lastSeen) {
				m.lastSeen = mark.LastSeen
			}
		} else {
			client.marks[mark.ObjectID] = &sequenceMark{
				seq:      mark.SequenceNum,
				keep:     mark.Keep,
				lastSeen: mark.LastSeen,
			}
		}

		s.mu.Unlock()
	}
}

// Len returns the number of stored marks.
func (t *SequenceTable) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.Lock()
		for _, client := range s.clients {
			n += len(client.marks)
		}
		s.mu.Unlock()
	}

	return n
}
