// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the DGC server.
//
// It exposes route wiring, request handlers for the dirty and clean calls
// and for export management, and the middleware every request passes
// through: panic recovery, request tracing, access logging and a request
// timeout. Handlers decode the request, delegate to the service layer and
// map service errors to status codes.
package http
