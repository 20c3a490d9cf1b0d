// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the DGC server's transports.
//
// It binds the HTTP and gRPC listeners that are configured, runs them next
// to the background workers and stops everything gracefully on the first
// failure or on SIGINT, SIGTERM or SIGQUIT.
package server
