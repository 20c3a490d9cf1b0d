// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dgc/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// LeaseRenewer keeps the client's remote references alive.
//
// It counts local references per object, asserts interest in newly
// referenced objects, renews every held lease before it runs out and tells
// the server when the last local reference to an object is dropped.
type LeaseRenewer interface {
	// Reference adds one local reference to each id. Ids referenced for the
	// first time are made dirty on the server in one batched call.
	Reference(ctx context.Context, ids ...models.ObjectID) error

	// Release drops one local reference from each id. Ids left without
	// local references are cleaned on the server in one batched call.
	Release(ctx context.Context, ids ...models.ObjectID) error

	// ReleaseAll cleans every held id regardless of its local count.
	ReleaseAll(ctx context.Context) error

	// Renew sends one dirty call covering every held id.
	Renew(ctx context.Context) error

	// RetryCleans re-sends clean calls that previously failed in transport.
	RetryCleans(ctx context.Context) error

	// NextRenewal is the time the held leases should next be renewed.
	NextRenewal() time.Time

	// PendingCleans is the number of clean calls waiting for a retry.
	PendingCleans() int

	// VMID is the client's identity; unassigned until the first successful
	// dirty call.
	VMID() models.VMID

	// Held lists the ids currently referenced.
	Held() []models.ObjectID
}

// RenewJob drives a [LeaseRenewer] in the background.
type RenewJob interface {
	// Start launches the renewal goroutine. Any previously running job is
	// stopped first.
	Start(ctx context.Context)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
