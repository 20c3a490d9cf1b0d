// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-dgc/internal/config"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/models"
)

const (
	dirtyPath = "/api/dgc/dirty"
	cleanPath = "/api/dgc/clean"
)

type httpDGCAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPDGCAdapter constructs an HTTP/REST implementation of [DGCAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDGCAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DGCAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpDGCAdapter{client: client, logger: logger.WithComponent("http_adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Dirty implements [DGCAdapter]. It POSTs req to POST /api/dgc/dirty and
// decodes the granted lease from the response body.
func (h *httpDGCAdapter) Dirty(ctx context.Context, req models.DirtyRequest) (models.DirtyResponse, error) {
	var dirtyResp models.DirtyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&dirtyResp).
		Post(dirtyPath)
	if err != nil {
		return models.DirtyResponse{}, fmt.Errorf("%w: dirty request: %w", ErrCallFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DirtyResponse{}, err
	}

	h.logger.Debug().
		Int64("seq", req.SequenceNum).
		Int64("lease_ms", dirtyResp.Lease.Value).
		Int("failures", len(dirtyResp.Failures)).
		Msg("dirty call succeeded")

	return dirtyResp, nil
}

// Clean implements [DGCAdapter]. It POSTs req to POST /api/dgc/clean.
func (h *httpDGCAdapter) Clean(ctx context.Context, req models.CleanRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(cleanPath)
	if err != nil {
		return fmt.Errorf("%w: clean request: %w", ErrCallFailed, err)
	}

	return mapHTTPError(resp)
}

// Close implements [DGCAdapter]. Idle connections of the underlying
// transport are released.
func (h *httpDGCAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
