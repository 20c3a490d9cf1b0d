// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dgc/models"
)

// ── Accept ────────────────────────────────────────────────────────────────────

func TestSequenceTable_Accept(t *testing.T) {
	a := testVMID(1)
	obj := testObjectID(1)

	type call struct {
		seq    int64
		strong bool
		want   bool
		mark   int64
	}

	tests := []struct {
		name  string
		calls []call
	}{
		{
			name:  "first call is accepted",
			calls: []call{{seq: 7, want: true, mark: 7}},
		},
		{
			name:  "increasing numbers are accepted",
			calls: []call{{seq: 1, want: true, mark: 1}, {seq: 2, want: true, mark: 2}, {seq: 10, want: true, mark: 10}},
		},
		{
			name:  "replay is rejected",
			calls: []call{{seq: 5, want: true, mark: 5}, {seq: 5, want: false, mark: 5}},
		},
		{
			name:  "older call is rejected",
			calls: []call{{seq: 5, want: true, mark: 5}, {seq: 3, want: false, mark: 5}},
		},
		{
			name:  "strong call with lower number is accepted without lowering the mark",
			calls: []call{{seq: 9, want: true, mark: 9}, {seq: 4, strong: true, want: true, mark: 9}},
		},
		{
			name:  "strong call raises the mark",
			calls: []call{{seq: 2, want: true, mark: 2}, {seq: 8, strong: true, want: true, mark: 8}, {seq: 8, want: false, mark: 8}},
		},
		{
			name:  "strong clean seq 5 then stale dirty seq 3",
			calls: []call{{seq: 5, strong: true, want: true, mark: 5}, {seq: 3, want: false, mark: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewSequenceTable(4)
			for i, c := range tt.calls {
				got := table.Accept(a, obj, c.seq, c.strong, t0)
				assert.Equal(t, c.want, got, "call %d", i)

				mark, ok := table.Mark(a, obj)
				require.True(t, ok)
				assert.Equal(t, c.mark, mark, "mark after call %d", i)
			}
		})
	}
}

func TestSequenceTable_Accept_PairsAreIndependent(t *testing.T) {
	table := NewSequenceTable(4)
	a, b := testVMID(1), testVMID(2)

	// one batched call carrying several ids is accepted for each of them
	assert.True(t, table.Accept(a, testObjectID(1), 10, false, t0))
	assert.True(t, table.Accept(a, testObjectID(2), 10, false, t0))

	// other objects and other clients keep their own marks
	assert.True(t, table.Accept(a, testObjectID(3), 1, false, t0))
	assert.True(t, table.Accept(b, testObjectID(1), 1, false, t0))

	assert.False(t, table.Accept(a, testObjectID(1), 9, false, t0))
	assert.Equal(t, 4, table.Len())
}

func TestSequenceTable_MarksNeverDecrease(t *testing.T) {
	table := NewSequenceTable(2)
	rnd := rand.New(rand.NewSource(42))
	a := testVMID(1)

	var highest int64
	seen := false
	for i := 0; i < 2000; i++ {
		obj := testObjectID(rnd.Int63n(3))
		seq := rnd.Int63n(500)
		strong := rnd.Intn(5) == 0

		before, had := table.Mark(a, obj)
		accepted := table.Accept(a, obj, seq, strong, t0)
		after, _ := table.Mark(a, obj)

		if had {
			assert.GreaterOrEqual(t, after, before)
			if !strong {
				assert.Equal(t, seq > before, accepted)
			}
		}
		if strong {
			assert.True(t, accepted)
		}
		if obj == testObjectID(0) {
			if !seen || after > highest {
				highest = after
			}
			seen = true
		}
	}

	if seen {
		mark, _ := table.Mark(a, testObjectID(0))
		assert.Equal(t, highest, mark)
	}
}

// ── Prune ─────────────────────────────────────────────────────────────────────

func TestSequenceTable_Prune(t *testing.T) {
	table := NewSequenceTable(4)
	a := testVMID(1)

	table.Accept(a, testObjectID(1), 1, false, t0)
	table.Accept(a, testObjectID(2), 1, true, t0)
	table.Accept(a, testObjectID(3), 1, false, t0.Add(50*time.Minute))

	// ordinary marks older than an hour go, the strong one stays
	pruned := table.Prune(t0.Add(61*time.Minute), time.Hour, 24*time.Hour)
	assert.Equal(t, 1, pruned)

	_, ok := table.Mark(a, testObjectID(1))
	assert.False(t, ok)
	_, ok = table.Mark(a, testObjectID(2))
	assert.True(t, ok)
	_, ok = table.Mark(a, testObjectID(3))
	assert.True(t, ok)

	pruned = table.Prune(t0.Add(25*time.Hour), time.Hour, 24*time.Hour)
	assert.Equal(t, 2, pruned)
	assert.Zero(t, table.Len())
}

func TestSequenceTable_LaterDirtyClearsKeep(t *testing.T) {
	table := NewSequenceTable(4)
	a := testVMID(1)
	obj := testObjectID(1)

	table.Accept(a, obj, 5, true, t0)
	table.Accept(a, obj, 6, false, t0)

	snapshot := table.Snapshot()
	require.Len(t, snapshot, 1)
	assert.False(t, snapshot[0].Keep)
}

// ── Snapshot / Restore ────────────────────────────────────────────────────────

func TestSequenceTable_SnapshotRestore(t *testing.T) {
	source := NewSequenceTable(4)
	a, b := testVMID(1), testVMID(2)

	source.Accept(a, testObjectID(1), 10, false, t0)
	source.Accept(b, testObjectID(1), 4, true, t0)

	restored := NewSequenceTable(8)
	restored.Accept(a, testObjectID(1), 20, false, t0.Add(time.Minute))
	restored.Restore(source.Snapshot())

	mark, ok := restored.Mark(a, testObjectID(1))
	require.True(t, ok)
	assert.Equal(t, int64(20), mark, "restore never lowers a mark")

	mark, ok = restored.Mark(b, testObjectID(1))
	require.True(t, ok)
	assert.Equal(t, int64(4), mark)

	// restored marks keep rejecting stale calls
	assert.False(t, restored.Accept(b, testObjectID(1), 3, false, t0))
	assert.True(t, restored.Accept(b, testObjectID(1), 5, false, t0))
}

func TestSequenceTable_RestoreSkipsUnassigned(t *testing.T) {
	table := NewSequenceTable(4)
	table.Restore([]models.SequenceMark{{VMID: models.VMID{}, ObjectID: testObjectID(1), SequenceNum: 3}})

	assert.Zero(t, table.Len())
}
