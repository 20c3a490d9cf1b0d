// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/dgc/dirty", h.dirty)
		r.Post("/dgc/clean", h.clean)

		r.Route("/exports", func(r chi.Router) {
			r.Post("/", h.export)
			r.Get("/", h.listExports)
			r.Get("/{objectID}", h.getExport)
			r.Delete("/{objectID}", h.unpinExport)
		})

		r.Get("/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
