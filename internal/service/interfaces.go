// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DGCService handles the server side of the lease protocol.
type DGCService interface {
	// Dirty leases every id of req to the calling client. Stale calls are
	// ignored; ids the server does not export are reported as failures.
	Dirty(ctx context.Context, req models.DirtyRequest) (models.DirtyResponse, error)
	// Clean drops the calling client's leases on the ids of req. It is
	// idempotent and never reports ids that were already gone.
	Clean(ctx context.Context, req models.CleanRequest) error
}

// ExportService manages the server's exported objects.
type ExportService interface {
	Export(ctx context.Context, req models.ExportRequest) (models.ExportInfo, error)
	Get(ctx context.Context, id models.ObjectID) (models.ExportInfo, error)
	List(ctx context.Context) (models.ExportList, error)
	Unpin(ctx context.Context, id models.ObjectID) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// ReferenceStore is the reference table as seen by the services.
type ReferenceStore interface {
	GrantedLease(requested time.Duration) (time.Duration, error)
	AddOrRenew(objID models.ObjectID, vmid models.VMID, requested time.Duration, now time.Time) (time.Duration, error)
	Remove(objID models.ObjectID, vmid models.VMID) bool
	Holders(objID models.ObjectID) []models.Holder
}

// SequenceValidator orders calls of one client about one object.
type SequenceValidator interface {
	Accept(vmid models.VMID, objID models.ObjectID, seq int64, strong bool, now time.Time) bool
}

// ExportTable is the part of the export table the collector calls into.
type ExportTable interface {
	Exists(id models.ObjectID) bool
	Reclaim(ctx context.Context, id models.ObjectID) error
}

// VMIDAllocator hands out identities to clients that have none.
type VMIDAllocator interface {
	NewVMID() models.VMID
}
