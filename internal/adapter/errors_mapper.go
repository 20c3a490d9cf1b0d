// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the statuses the DGC routes answer with to adapter
// errors. Gateway and timeout statuses leave the outcome of the call unknown.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusRequestTimeout:      ErrCallFailed,
	http.StatusBadGateway:          ErrCallFailed,
	http.StatusServiceUnavailable:  ErrCallFailed,
	http.StatusGatewayTimeout:      ErrCallFailed,
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: http %d: %s", err, code, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, code, body)
}
