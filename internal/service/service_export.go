// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-dgc/internal/export"
	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/models"
)

// ExportRegistry is the export table as seen by [ExportService].
type ExportRegistry interface {
	Export(name string, permanent bool) models.ObjectID
	Get(id models.ObjectID) (export.Export, bool)
	List() []export.Export
	Unpin(ctx context.Context, id models.ObjectID) (bool, error)
}

type exportService struct {
	exports    ExportRegistry
	references ReferenceStore
	logger     *logger.Logger
}

// NewExportService constructs an [ExportService].
func NewExportService(exports ExportRegistry, references ReferenceStore, logger *logger.Logger) ExportService {
	return &exportService{
		exports:    exports,
		references: references,
		logger:     logger,
	}
}

func (s *exportService) Export(ctx context.Context, req models.ExportRequest) (models.ExportInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.ExportInfo{}, ErrValidationNoExportName
	}

	id := s.exports.Export(name, req.Permanent)
	logger.FromContext(ctx).Info().Str("object_id", id.String()).Str("name", name).Msg("object exported")

	return s.Get(ctx, id)
}

func (s *exportService) Get(_ context.Context, id models.ObjectID) (models.ExportInfo, error) {
	e, ok := s.exports.Get(id)
	if !ok {
		return models.ExportInfo{}, ErrObjectNotExported
	}

	return s.info(e), nil
}

func (s *exportService) List(_ context.Context) (models.ExportList, error) {
	exports := s.exports.List()

	list := models.ExportList{
		Exports: make([]models.ExportInfo, 0, len(exports)),
		Length:  len(exports),
	}
	for _, e := range exports {
		list.Exports = append(list.Exports, s.info(e))
	}

	return list, nil
}

func (s *exportService) Unpin(ctx context.Context, id models.ObjectID) error {
	removed, err := s.exports.Unpin(ctx, id)
	if err != nil {
		return err
	}

	if removed {
		logger.FromContext(ctx).Info().Str("object_id", id.String()).Msg("export removed after last unpin")
	}

	return nil
}

func (s *exportService) info(e export.Export) models.ExportInfo {
	return models.ExportInfo{
		ObjectID:   e.ID,
		Name:       e.Name,
		Permanent:  e.Permanent,
		LocalRefs:  e.LocalRefs,
		ExportedAt: e.ExportedAt,
		Holders:    s.references.Holders(e.ID),
	}
}
