// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/models"
)

var errorStatusMap = map[error]int{
	service.ErrNegativeLeaseDuration:  http.StatusBadRequest,
	service.ErrValidationNoExportName: http.StatusBadRequest,
	service.ErrObjectNotExported:      http.StatusNotFound,
	service.ErrNotPinned:              http.StatusConflict,

	models.ErrMalformedObjectID: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status it maps to. Internal
// errors are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Msg(msg)
	http.Error(w, err.Error(), status)
}
