// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ObjectID
		wantErr bool
	}{
		{
			name:  "valid",
			input: "17@2a:18bcfe56800:3",
			want:  ObjectID{Num: 17, Space: UID{Unique: 42, Time: 0x18bcfe56800, Count: 3}},
		},
		{
			name:  "negative unique is kept",
			input: "1@ffffffff:0:ffff",
			want:  ObjectID{Num: 1, Space: UID{Unique: -1, Count: -1}},
		},
		{name: "missing space", input: "17", wantErr: true},
		{name: "bad number", input: "x@1:2:3", wantErr: true},
		{name: "short space", input: "1@1:2", wantErr: true},
		{name: "bad hex", input: "1@zz:2:3", wantErr: true},
		{name: "count overflow", input: "1@1:2:10000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseObjectID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedObjectID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestObjectID_JSONIsText(t *testing.T) {
	req := DirtyRequest{
		ObjectIDs:   []ObjectID{{Num: 5, Space: UID{Unique: 1, Time: 2, Count: 3}}},
		SequenceNum: 9,
		Lease:       NewLease(VMID{}, 30*time.Second),
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"object_ids":["5@1:2:3"]`)
	assert.Contains(t, string(data), `"value":30000`)

	var decoded DirtyRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, req.ObjectIDs, decoded.ObjectIDs)
	assert.Equal(t, 30*time.Second, decoded.Lease.Duration())
}

func TestObjectID_BytesFixedWidth(t *testing.T) {
	a := ObjectID{Num: 1}
	b := ObjectID{Num: 1 << 40, Space: UID{Unique: -1, Time: -1, Count: -1}}

	assert.Len(t, a.Bytes(), 8+UIDLen)
	assert.Len(t, b.Bytes(), 8+UIDLen)
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestObjectID_Compare(t *testing.T) {
	// 0x10 renders as "10", which sorts before "9" as text
	low := ObjectID{Num: 7, Space: UID{Unique: 9}}
	high := ObjectID{Num: 7, Space: UID{Unique: 0x10}}

	tests := []struct {
		name string
		a, b ObjectID
		want int
	}{
		{name: "num first", a: ObjectID{Num: 1, Space: UID{Unique: 99}}, b: ObjectID{Num: 2}, want: -1},
		{name: "unique numeric", a: low, b: high, want: -1},
		{name: "time breaks unique tie", a: ObjectID{Space: UID{Unique: 1, Time: 20}}, b: ObjectID{Space: UID{Unique: 1, Time: 3}}, want: 1},
		{name: "count breaks time tie", a: ObjectID{Space: UID{Count: -1}}, b: ObjectID{Space: UID{Count: 1}}, want: -1},
		{name: "equal", a: high, b: high, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}
