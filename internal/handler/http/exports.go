// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/utils"
	"github.com/MKhiriev/go-dgc/models"
)

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ExportRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid export request body")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	info, err := h.services.ExportService.Export(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "export failed")
		return
	}

	log.Info().Str("object_id", info.ObjectID.String()).Str("name", info.Name).Msg("object exported")
	if _, err = utils.WriteJSON(w, info, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing export response")
	}
}

func (h *Handler) listExports(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.ExportService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "listing exports failed")
		return
	}

	if _, err = utils.WriteJSON(w, list, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing export list")
	}
}

func (h *Handler) getExport(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseObjectID(chi.URLParam(r, "objectID"))
	if err != nil {
		writeError(w, r, err, "bad object id")
		return
	}

	info, err := h.services.ExportService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "getting export failed")
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing export")
	}
}

// unpinExport drops the local pin of an export. The object stays alive
// until its last remote lease is gone.
func (h *Handler) unpinExport(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseObjectID(chi.URLParam(r, "objectID"))
	if err != nil {
		writeError(w, r, err, "bad object id")
		return
	}

	if err = h.services.ExportService.Unpin(r.Context(), id); err != nil {
		writeError(w, r, err, "unpinning export failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
