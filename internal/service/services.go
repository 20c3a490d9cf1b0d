// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dgc/internal/export"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/store"
	"github.com/MKhiriev/go-dgc/models"
)

// Services groups the server-side services.
type Services struct {
	DGCService     DGCService
	ExportService  ExportService
	AppInfoService AppInfoService
}

// NewServices wires the server-side services to the shared tables.
func NewServices(storages *store.Storages, exports *export.Table, vmids VMIDAllocator, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		DGCService:     NewDGCService(storages.References, storages.Sequences, exports, vmids, logger),
		ExportService:  NewExportService(exports, storages.References, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
