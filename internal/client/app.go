// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/models"
)

const releaseTimeout = 10 * time.Second

var errNoServices = errors.New("client services are not configured")

type App struct {
	services  *service.ClientServices
	transport io.Closer
	objectIDs []models.ObjectID
	logger    *logger.Logger
}

// NewApp builds the client application. transport is closed when Run
// returns.
func NewApp(services *service.ClientServices, transport io.Closer, objectIDs []models.ObjectID, logger *logger.Logger) (*App, error) {
	if services == nil || services.LeaseRenewer == nil || services.RenewJob == nil {
		return nil, errNoServices
	}

	return &App{
		services:  services,
		transport: transport,
		objectIDs: objectIDs,
		logger:    logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.RunContext(ctx)
}

// RunContext references the configured objects, renews their leases until
// ctx is done and then releases them all.
//
// A failed initial reference is not fatal: ids whose dirty call failed in
// transport are kept and retried by the renew job.
func (a *App) RunContext(ctx context.Context) (err error) {
	defer func() {
		if a.transport == nil {
			return
		}
		if closeErr := a.transport.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close transport: %w", closeErr))
		}
	}()

	renewer := a.services.LeaseRenewer

	if len(a.objectIDs) > 0 {
		if refErr := renewer.Reference(ctx, a.objectIDs...); refErr != nil {
			a.logger.Warn().Err(refErr).Msg("initial reference failed")
		}
	}
	a.logger.Info().
		Str("vmid", renewer.VMID().String()).
		Int("held", len(renewer.Held())).
		Msg("client started")

	a.services.RenewJob.Start(ctx)
	<-ctx.Done()
	a.services.RenewJob.Stop()

	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err = renewer.ReleaseAll(releaseCtx); err != nil {
		a.logger.Err(err).Int("pending_cleans", renewer.PendingCleans()).Msg("release on exit failed")
		return fmt.Errorf("release references: %w", err)
	}

	a.logger.Info().Msg("client stopped, all references released")
	return nil
}
