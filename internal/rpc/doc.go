// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc defines the gRPC contract of the DGC service: the service
// descriptor, typed client and server bindings, and the JSON codec the
// messages travel in.
//
// Messages are the JSON-tagged structs of package models, so no protobuf
// definitions are involved. Both sides select the codec through the "json"
// content subtype.
package rpc
