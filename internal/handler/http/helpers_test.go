// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/mock"
	"github.com/MKhiriev/go-dgc/internal/service"
	"github.com/MKhiriev/go-dgc/models"
)

var testSpace = models.UID{Unique: 7, Time: 1700000000000, Count: 3}

func testVMID(b byte) models.VMID {
	return models.VMID{
		Addr: []byte{b, 1, 2, 3, 4, 5, 6, 7},
		UID:  models.UID{Unique: int32(b), Time: 1700000000000, Count: 1},
	}
}

func testObjectID(num int64) models.ObjectID {
	return models.ObjectID{Num: num, Space: testSpace}
}

type handlerFixture struct {
	dgc     *mock.MockDGCService
	exports *mock.MockExportService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		dgc:     mock.NewMockDGCService(ctrl),
		exports: mock.NewMockExportService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		DGCService:     f.dgc,
		ExportService:  f.exports,
		AppInfoService: f.appInfo,
	}, 0, logger.Nop())
	f.router = h.Init()

	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}
