// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independent(t *testing.T) {
	a, b := NewHTTPClient(), NewHTTPClient()

	require.NotNil(t, a.Client)
	require.NotNil(t, b.Client)
	assert.NotSame(t, a.Client, b.Client)
}

func TestHTTPClient_TraceHeader(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "forwarded", ctx: WithTraceID(context.Background(), "trace-42"), want: "trace-42"},
		{name: "absent", ctx: context.Background(), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(chan string, 1)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen <- r.Header.Get(TraceIDHeader)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			resp, err := NewHTTPClient().R().SetContext(tt.ctx).Post(srv.URL + "/api/dgc/clean")
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode())
			assert.Equal(t, tt.want, <-seen)
		})
	}
}
