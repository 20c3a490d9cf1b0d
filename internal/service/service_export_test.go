// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-dgc/internal/export"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/store"
	"github.com/MKhiriev/go-dgc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportService() (ExportService, *export.Table, *store.ReferenceTable) {
	references := store.NewReferenceTable(4, testMaxLease)
	exports := export.NewTable(testSpace, references, logger.Nop())
	return NewExportService(exports, references, logger.Nop()), exports, references
}

func TestExportService_Export(t *testing.T) {
	ctx := context.Background()
	svc, exports, _ := newTestExportService()

	info, err := svc.Export(ctx, models.ExportRequest{Name: "  counter ", Permanent: true})
	require.NoError(t, err)

	assert.Equal(t, "counter", info.Name)
	assert.True(t, info.Permanent)
	assert.Equal(t, 1, info.LocalRefs)
	assert.Equal(t, testSpace, info.ObjectID.Space)
	assert.True(t, exports.Exists(info.ObjectID))
}

func TestExportService_Export_NoName(t *testing.T) {
	svc, exports, _ := newTestExportService()

	_, err := svc.Export(context.Background(), models.ExportRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidationNoExportName)
	assert.Zero(t, exports.Len())
}

func TestExportService_Get(t *testing.T) {
	ctx := context.Background()
	svc, exports, references := newTestExportService()

	id := exports.Export("obj", false)
	_, err := references.AddOrRenew(id, testVMID(1), testMaxLease, t0)
	require.NoError(t, err)

	info, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, info.ObjectID)
	require.Len(t, info.Holders, 1)
	assert.True(t, info.Holders[0].VMID.Equal(testVMID(1)))

	_, err = svc.Get(ctx, testObjectID(404))
	assert.ErrorIs(t, err, ErrObjectNotExported)
}

func TestExportService_List(t *testing.T) {
	ctx := context.Background()
	svc, exports, _ := newTestExportService()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Length)
	assert.NotNil(t, list.Exports)

	a := exports.Export("a", false)
	b := exports.Export("b", false)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Length)
	assert.Equal(t, a, list.Exports[0].ObjectID)
	assert.Equal(t, b, list.Exports[1].ObjectID)
}

func TestExportService_Unpin(t *testing.T) {
	ctx := context.Background()

	t.Run("removes export without holders", func(t *testing.T) {
		svc, exports, _ := newTestExportService()
		id := exports.Export("obj", false)

		require.NoError(t, svc.Unpin(ctx, id))
		assert.False(t, exports.Exists(id))
	})

	t.Run("keeps export held remotely", func(t *testing.T) {
		svc, exports, references := newTestExportService()
		id := exports.Export("obj", false)
		_, err := references.AddOrRenew(id, testVMID(1), testMaxLease, time.Now())
		require.NoError(t, err)

		require.NoError(t, svc.Unpin(ctx, id))
		assert.True(t, exports.Exists(id))
		assert.ErrorIs(t, svc.Unpin(ctx, id), ErrNotPinned)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newTestExportService()
		assert.ErrorIs(t, svc.Unpin(ctx, testObjectID(404)), ErrObjectNotExported)
	})
}
