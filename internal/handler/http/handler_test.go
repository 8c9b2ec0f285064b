// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/service"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/require"
)

// newTestServer boots the full router over real file stores in a fresh
// temporary data directory. Requests exercise the same code path as
// production: middleware, handlers, services, stores.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	storages, err := store.NewStorages(config.Storage{DataDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(storages, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "memory-calendar",
		TokenDuration: time.Hour,
	}, logger.Nop())

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv
}

// doJSON sends a JSON request and returns the response plus its body bytes.
// An empty token skips the Authorization header.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, raw
}

// registerUser registers an account through the API and returns the bearer
// token issued for it.
func registerUser(t *testing.T, srv *httptest.Server, username string, role models.Role) string {
	t.Helper()

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/user/register", "", models.Credentials{
		Username: username,
		Password: "pw123",
		Role:     role,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token := resp.Header.Get("Authorization")
	require.NotEmpty(t, token)

	return token[len("Bearer "):]
}
