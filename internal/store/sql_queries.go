// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/hex"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dgc/models"
)

const (
	sequenceMarksTable = "sequence_marks"

	// saveMarksBatchSize bounds the rows of one INSERT so that the bind
	// parameter count stays under SQLite's limit.
	saveMarksBatchSize = 500

	upsertSequenceMarks = `ON CONFLICT (vmid, object_id) DO UPDATE SET
		sequence_num = CASE
			WHEN excluded.sequence_num > sequence_marks.sequence_num THEN excluded.sequence_num
			ELSE sequence_marks.sequence_num
		END,
		keep         = excluded.keep,
		last_seen_ms = excluded.last_seen_ms`
)

var sequenceMarkColumns = []string{"vmid", "object_id", "sequence_num", "keep", "last_seen_ms"}

func buildSaveMarksQuery(b sq.StatementBuilderType, marks []models.SequenceMark) (string, []any, error) {
	insert := b.Insert(sequenceMarksTable).Columns(sequenceMarkColumns...)
	for _, m := range marks {
		insert = insert.Values(
			encodeVMID(m.VMID),
			m.ObjectID.String(),
			m.SequenceNum,
			m.Keep,
			m.LastSeen.UnixMilli(),
		)
	}

	return insert.Suffix(upsertSequenceMarks).ToSql()
}

func buildLoadMarksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(sequenceMarkColumns...).From(sequenceMarksTable).ToSql()
}

func buildDeleteMarksQuery(b sq.StatementBuilderType, cutoff, keepCutoff time.Time) (string, []any, error) {
	return b.Delete(sequenceMarksTable).
		Where(sq.Or{
			sq.And{
				sq.Eq{"keep": false},
				sq.Lt{"last_seen_ms": cutoff.UnixMilli()},
			},
			sq.Lt{"last_seen_ms": keepCutoff.UnixMilli()},
		}).
		ToSql()
}

func encodeVMID(vmid models.VMID) string {
	return hex.EncodeToString([]byte(vmid.Key()))
}

func decodeVMID(s string) (models.VMID, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return models.VMID{}, err
	}

	return models.VMIDFromKey(string(key))
}
