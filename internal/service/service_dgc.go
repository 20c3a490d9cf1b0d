// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/models"
)

// dgcService implements [DGCService] on top of the reference table, the
// sequence table and the export table.
//
// Every object moves through Absent -> Leased -> (Expired ->) Absent: a
// dirty call adds the caller as a holder, a clean call or the reaper removes
// it, and the export table is asked to reclaim the object once the last
// holder is gone.
type dgcService struct {
	references ReferenceStore
	sequences  SequenceValidator
	exports    ExportTable
	vmids      VMIDAllocator
	locks      objectLocks

	now    func() time.Time
	logger *logger.Logger
}

// NewDGCService constructs a [DGCService].
func NewDGCService(references ReferenceStore, sequences SequenceValidator, exports ExportTable, vmids VMIDAllocator, logger *logger.Logger) DGCService {
	return &dgcService{
		references: references,
		sequences:  sequences,
		exports:    exports,
		vmids:      vmids,
		now:        time.Now,
		logger:     logger.WithComponent("dgc_service"),
	}
}

// Dirty implements [DGCService].
func (s *dgcService) Dirty(ctx context.Context, req models.DirtyRequest) (models.DirtyResponse, error) {
	log := logger.FromContext(ctx)

	if req.Lease.Value < 0 {
		return models.DirtyResponse{}, fmt.Errorf("%w: %d ms", ErrNegativeLeaseDuration, req.Lease.Value)
	}

	vmid := req.Lease.VMID
	if !vmid.IsAssigned() {
		vmid = s.vmids.NewVMID()
		log.Debug().Str("vmid", vmid.String()).Msg("allocated vmid for unassigned client")
	}

	requested := req.Lease.Duration()
	granted, err := s.references.GrantedLease(requested)
	if err != nil {
		return models.DirtyResponse{}, err
	}

	now := s.now()
	resp := models.DirtyResponse{Lease: models.Lease{VMID: vmid, Value: granted.Milliseconds()}}

	for _, id := range req.ObjectIDs {
		ok, err := s.dirtyObject(ctx, id, vmid, req.SequenceNum, requested, now)
		if err != nil {
			return models.DirtyResponse{}, err
		}
		if !ok {
			resp.Failures = append(resp.Failures, models.ObjectFailure{ObjectID: id, Reason: ReasonNotExported})
		}
	}

	log.Debug().
		Str("vmid", vmid.String()).
		Int("objects", len(req.ObjectIDs)).
		Int("failures", len(resp.Failures)).
		Int64("granted_ms", resp.Lease.Value).
		Msg("dirty call handled")

	return resp, nil
}

// dirtyObject applies one id of a dirty call. It reports false when the
// object is not exported, including when its export was reclaimed while the
// holder was being added.
func (s *dgcService) dirtyObject(ctx context.Context, id models.ObjectID, vmid models.VMID, seq int64, requested time.Duration, now time.Time) (bool, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	if !s.sequences.Accept(vmid, id, seq, false, now) {
		logger.FromContext(ctx).Debug().
			Str("vmid", vmid.String()).
			Str("object_id", id.String()).
			Int64("seq", seq).
			Msg("stale dirty call ignored")
		return true, nil
	}

	if !s.exports.Exists(id) {
		return false, nil
	}

	if _, err := s.references.AddOrRenew(id, vmid, requested, now); err != nil {
		return false, err
	}

	// a reclaim between the check above and the grant leaves a holder on a
	// removed export
	if !s.exports.Exists(id) {
		s.references.Remove(id, vmid)
		return false, nil
	}

	return true, nil
}

// Clean implements [DGCService].
func (s *dgcService) Clean(ctx context.Context, req models.CleanRequest) error {
	log := logger.FromContext(ctx)

	if !req.VMID.IsAssigned() {
		log.Debug().Msg("clean call from unassigned vmid ignored")
		return nil
	}

	now := s.now()
	for _, id := range req.ObjectIDs {
		if s.cleanObject(ctx, id, req, now) {
			s.reclaim(ctx, id)
		}
	}

	return nil
}

// cleanObject applies one id of a clean call and reports whether it removed
// the last holder.
func (s *dgcService) cleanObject(ctx context.Context, id models.ObjectID, req models.CleanRequest, now time.Time) bool {
	unlock := s.locks.lock(id)
	defer unlock()

	if !s.sequences.Accept(req.VMID, id, req.SequenceNum, req.Strong, now) {
		logger.FromContext(ctx).Debug().
			Str("vmid", req.VMID.String()).
			Str("object_id", id.String()).
			Int64("seq", req.SequenceNum).
			Msg("stale clean call ignored")
		return false
	}

	return s.references.Remove(id, req.VMID)
}

// reclaim invokes the export-reclamation callback. Its failures and panics
// are logged and never reach the client.
func (s *dgcService) reclaim(ctx context.Context, id models.ObjectID) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("object_id", id.String()).Msg("reclaim panicked")
		}
	}()

	if err := s.exports.Reclaim(ctx, id); err != nil && !errors.Is(err, ErrObjectNotExported) {
		log.Err(err).Str("object_id", id.String()).Msg("reclaim failed")
	}
}
