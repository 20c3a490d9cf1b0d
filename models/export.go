// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ExportRequest asks the server to export a new remote object.
type ExportRequest struct {
	// Name is a free-form label used in logs and listings.
	Name string `json:"name"`

	// Permanent exports are never reclaimed by the collector.
	Permanent bool `json:"permanent"`
}

// ExportInfo describes an exported object and its current holders.
type ExportInfo struct {
	ObjectID   ObjectID  `json:"object_id"`
	Name       string    `json:"name"`
	Permanent  bool      `json:"permanent"`
	LocalRefs  int       `json:"local_refs"`
	ExportedAt time.Time `json:"exported_at"`
	Holders    []Holder  `json:"holders,omitempty"`
}

// ExportList is the response of the export listing endpoint.
type ExportList struct {
	Exports []ExportInfo `json:"exports"`
	Length  int          `json:"length"`
}
