// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrCallFailed signals that a call may or may not have reached the
	// server. The lease renewer treats it as a transport failure.
	ErrCallFailed = errors.New("call failed")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")

	// ErrUnknownTransport is returned by NewDGCAdapter for a transport it
	// does not implement.
	ErrUnknownTransport = errors.New("unknown transport")
)
