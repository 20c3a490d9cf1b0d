// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-dgc/internal/adapter"
	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/models"
)

// leaseRenewer is the implementation of [LeaseRenewer].
//
// Calls to the server are serialized by callMu, so sequence numbers reach
// the adapter in order and a VMID assigned by the first dirty call is known
// before the next call is built. mu guards the bookkeeping and is never held
// across a call.
type leaseRenewer struct {
	adapter adapter.DGCAdapter
	cfg     config.ClientWorkers
	now     func() time.Time
	logger  *logger.Logger

	callMu sync.Mutex

	mu          sync.Mutex
	vmid        models.VMID
	seq         int64
	refs        map[models.ObjectID]*localRef
	pending     []*pendingClean
	lease       time.Duration
	nextRenewal time.Time
}

type localRef struct {
	count int

	// dirtyFailed is set once a dirty call for the id failed in transport.
	// The server may then hold a lease the client never learned about, so
	// the eventual clean is sent strong. The flag is sticky.
	dirtyFailed bool
}

type pendingClean struct {
	req     models.CleanRequest
	retries int
}

// NewLeaseRenewer constructs a [LeaseRenewer] talking to the server through
// serverAdapter.
func NewLeaseRenewer(serverAdapter adapter.DGCAdapter, cfg config.ClientWorkers, logger *logger.Logger) LeaseRenewer {
	return &leaseRenewer{
		adapter: serverAdapter,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger.WithComponent("lease_renewer"),
		refs:    make(map[models.ObjectID]*localRef),
	}
}

// Reference implements [LeaseRenewer].
func (r *leaseRenewer) Reference(ctx context.Context, ids ...models.ObjectID) error {
	r.callMu.Lock()
	defer r.callMu.Unlock()

	r.mu.Lock()
	var fresh []models.ObjectID
	for _, id := range ids {
		ref, ok := r.refs[id]
		if !ok {
			ref = &localRef{}
			r.refs[id] = ref
			fresh = append(fresh, id)
			r.dropPendingLocked(id)
		}
		ref.count++
	}
	r.mu.Unlock()

	if len(fresh) == 0 {
		return nil
	}

	return r.dirty(ctx, fresh, false)
}

// Release implements [LeaseRenewer].
func (r *leaseRenewer) Release(ctx context.Context, ids ...models.ObjectID) error {
	r.callMu.Lock()
	defer r.callMu.Unlock()

	r.mu.Lock()
	var weak, strong []models.ObjectID
	for _, id := range ids {
		ref, ok := r.refs[id]
		if !ok {
			continue
		}
		ref.count--
		if ref.count > 0 {
			continue
		}
		delete(r.refs, id)
		if ref.dirtyFailed {
			strong = append(strong, id)
		} else {
			weak = append(weak, id)
		}
	}
	r.mu.Unlock()

	return errors.Join(r.clean(ctx, weak, false), r.clean(ctx, strong, true))
}

// ReleaseAll implements [LeaseRenewer].
func (r *leaseRenewer) ReleaseAll(ctx context.Context) error {
	r.callMu.Lock()
	defer r.callMu.Unlock()

	r.mu.Lock()
	var weak, strong []models.ObjectID
	for id, ref := range r.refs {
		if ref.dirtyFailed {
			strong = append(strong, id)
		} else {
			weak = append(weak, id)
		}
	}
	clear(r.refs)
	r.mu.Unlock()

	sortIDs(weak)
	sortIDs(strong)

	return errors.Join(r.clean(ctx, weak, false), r.clean(ctx, strong, true))
}

// Renew implements [LeaseRenewer].
func (r *leaseRenewer) Renew(ctx context.Context) error {
	r.callMu.Lock()
	defer r.callMu.Unlock()

	ids := r.Held()
	if len(ids) == 0 {
		r.mu.Lock()
		r.nextRenewal = r.now().Add(r.cfg.RetryInterval)
		r.mu.Unlock()
		return nil
	}

	return r.dirty(ctx, ids, true)
}

// RetryCleans implements [LeaseRenewer].
func (r *leaseRenewer) RetryCleans(ctx context.Context) error {
	r.callMu.Lock()
	defer r.callMu.Unlock()

	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	var (
		kept []*pendingClean
		errs []error
	)
	for _, p := range pending {
		err := r.adapter.Clean(ctx, p.req)
		if err == nil {
			continue
		}

		p.retries++
		errs = append(errs, err)
		if errors.Is(err, adapter.ErrCallFailed) && p.retries < r.cfg.CleanRetries {
			kept = append(kept, p)
			continue
		}

		r.logger.Warn().Err(err).
			Int64("seq", p.req.SequenceNum).
			Int("objects", len(p.req.ObjectIDs)).
			Int("retries", p.retries).
			Msg("giving up on clean call, leases will expire on the server")
	}

	r.mu.Lock()
	r.pending = append(kept, r.pending...)
	r.mu.Unlock()

	return errors.Join(errs...)
}

// NextRenewal implements [LeaseRenewer].
func (r *leaseRenewer) NextRenewal() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextRenewal.IsZero() {
		return r.now().Add(r.cfg.RetryInterval)
	}

	return r.nextRenewal
}

// PendingCleans implements [LeaseRenewer].
func (r *leaseRenewer) PendingCleans() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pending)
}

// VMID implements [LeaseRenewer].
func (r *leaseRenewer) VMID() models.VMID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.vmid
}

// Held implements [LeaseRenewer].
func (r *leaseRenewer) Held() []models.ObjectID {
	r.mu.Lock()
	ids := make([]models.ObjectID, 0, len(r.refs))
	for id := range r.refs {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	sortIDs(ids)
	return ids
}

// dirty sends one dirty call for ids. full marks a renewal of every held
// id, which is what moves the renewal schedule forward.
func (r *leaseRenewer) dirty(ctx context.Context, ids []models.ObjectID, full bool) error {
	r.mu.Lock()
	r.seq++
	req := models.DirtyRequest{
		ObjectIDs:   ids,
		SequenceNum: r.seq,
		Lease:       models.NewLease(r.vmid, r.cfg.LeaseValue),
	}
	r.mu.Unlock()

	resp, err := r.adapter.Dirty(ctx, req)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if err != nil {
		if errors.Is(err, adapter.ErrCallFailed) {
			for _, id := range ids {
				if ref, ok := r.refs[id]; ok {
					ref.dirtyFailed = true
				}
			}
		}

		retryAt := now.Add(r.cfg.RetryInterval)
		if full || r.nextRenewal.IsZero() || retryAt.Before(r.nextRenewal) {
			r.nextRenewal = retryAt
		}

		r.logger.Warn().Err(err).Int64("seq", req.SequenceNum).Int("objects", len(ids)).Msg("dirty call failed")
		return fmt.Errorf("dirty call failed: %w", err)
	}

	if !r.vmid.IsAssigned() {
		r.vmid = resp.Lease.VMID
		r.logger.Info().Str("vmid", r.vmid.String()).Msg("adopted server-assigned vmid")
	} else if !resp.Lease.VMID.Equal(r.vmid) {
		r.logger.Warn().
			Str("vmid", r.vmid.String()).
			Str("granted_vmid", resp.Lease.VMID.String()).
			Msg("server granted a lease to a different vmid")
	}

	for _, failure := range resp.Failures {
		delete(r.refs, failure.ObjectID)
		r.logger.Warn().
			Str("object_id", failure.ObjectID.String()).
			Str("reason", failure.Reason).
			Msg("server refused reference, dropping it")
	}

	r.lease = resp.Lease.Duration()
	renewAt := now.Add(r.renewalInterval())
	if full || r.nextRenewal.IsZero() || renewAt.Before(r.nextRenewal) {
		r.nextRenewal = renewAt
	}

	return nil
}

func (r *leaseRenewer) renewalInterval() time.Duration {
	if half := r.lease / 2; half > 0 {
		return half
	}

	return r.cfg.RetryInterval
}

// clean sends one clean call for ids. A call failing in transport is queued
// for [leaseRenewer.RetryCleans] with the same sequence number and flag.
func (r *leaseRenewer) clean(ctx context.Context, ids []models.ObjectID, strong bool) error {
	if len(ids) == 0 {
		return nil
	}

	r.mu.Lock()
	vmid := r.vmid
	if !vmid.IsAssigned() {
		// the server never granted this client anything it knows about
		r.mu.Unlock()
		return nil
	}
	r.seq++
	req := models.CleanRequest{
		ObjectIDs:   ids,
		SequenceNum: r.seq,
		VMID:        vmid,
		Strong:      strong,
	}
	r.mu.Unlock()

	err := r.adapter.Clean(ctx, req)
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrCallFailed) && r.cfg.CleanRetries > 0 {
		r.mu.Lock()
		r.pending = append(r.pending, &pendingClean{req: req})
		r.mu.Unlock()
	}

	r.logger.Warn().Err(err).Int64("seq", req.SequenceNum).Bool("strong", strong).Msg("clean call failed")
	return fmt.Errorf("clean call failed: %w", err)
}

// dropPendingLocked removes id from queued clean calls. A re-referenced id
// must not be cleaned by a late retry.
func (r *leaseRenewer) dropPendingLocked(id models.ObjectID) {
	kept := r.pending[:0]
	for _, p := range r.pending {
		p.req.ObjectIDs = without(p.req.ObjectIDs, id)
		if len(p.req.ObjectIDs) > 0 {
			kept = append(kept, p)
		}
	}
	r.pending = kept
}

func without(ids []models.ObjectID, id models.ObjectID) []models.ObjectID {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}

func sortIDs(ids []models.ObjectID) {
	slices.SortFunc(ids, models.ObjectID.Compare)
}
