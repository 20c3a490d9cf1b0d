// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
)

// minJobWait keeps the renew loop from spinning when a renewal is overdue.
const minJobWait = time.Millisecond

type renewJob struct {
	renewer       LeaseRenewer
	retryInterval time.Duration
	logger        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRenewJob creates a job that renews leases whenever renewer asks for it
// and retries failed clean calls every retryInterval. The job is idle until
// Start is called.
func NewRenewJob(renewer LeaseRenewer, retryInterval time.Duration, logger *logger.Logger) RenewJob {
	if retryInterval <= 0 {
		retryInterval = time.Second
	}

	return &renewJob{
		renewer:       renewer,
		retryInterval: retryInterval,
		logger:        logger.WithComponent("renew_job"),
	}
}

// Start implements [RenewJob]. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *renewJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.run(jobCtx)
	}()
}

func (j *renewJob) run(ctx context.Context) {
	timer := time.NewTimer(j.wait())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if !time.Now().Before(j.renewer.NextRenewal()) {
			if err := j.renewer.Renew(ctx); err != nil {
				j.logger.Debug().Err(err).Msg("renewal failed, will retry")
			}
		}

		if j.renewer.PendingCleans() > 0 {
			if err := j.renewer.RetryCleans(ctx); err != nil {
				j.logger.Debug().Err(err).Msg("clean retry failed")
			}
		}

		timer.Reset(j.wait())
	}
}

func (j *renewJob) wait() time.Duration {
	wait := time.Until(j.renewer.NextRenewal())
	if j.renewer.PendingCleans() > 0 && wait > j.retryInterval {
		wait = j.retryInterval
	}

	return max(wait, minJobWait)
}

// Stop implements [RenewJob]. Safe to call when the job is not running.
func (j *renewJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
