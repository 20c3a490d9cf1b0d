// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/models"
)

func (h *Handler) dirty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DirtyRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid dirty request body")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.DGCService.Dirty(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "dirty call failed")
		return
	}

	log.Debug().
		Str("vmid", resp.Lease.VMID.String()).
		Int("objects", len(req.ObjectIDs)).
		Int("failures", len(resp.Failures)).
		Int64("seq", req.SequenceNum).
		Msg("dirty call served")

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing dirty response")
	}
}

func (h *Handler) clean(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CleanRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid clean request body")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DGCService.Clean(r.Context(), req); err != nil {
		writeError(w, r, err, "clean call failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
