// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Memories(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "alice", models.RoleSender)

	t.Run("add answers 201 with the stamped entry", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/memories", token, models.AddMemoryRequest{
			Date:  "2026-08-30",
			Title: "Picnic",
			Text:  "We went to the lake.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var entry models.MemoryEntry
		require.NoError(t, json.Unmarshal(body, &entry))
		assert.Equal(t, "Picnic", entry.Title)
		assert.False(t, entry.TS.IsZero())
	})

	t.Run("list returns the day's entries", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodGet, "/api/memories?date=2026-08-30", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []models.MemoryEntry
		require.NoError(t, json.Unmarshal(body, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "Picnic", entries[0].Title)
	})

	t.Run("another day is empty, not null", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodGet, "/api/memories?date=2026-08-31", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, "[]", string(body))
	})

	t.Run("blank title answers 400", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/memories", token, models.AddMemoryRequest{
			Date:  "2026-08-30",
			Title: "   ",
			Text:  "text",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing date answers 400", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodGet, "/api/memories", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_Decorations(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "alice", models.RoleSender)

	deco := models.Decoration{BG: "#ffe4e1", Radius: 12, Stickers: []string{"star"}}

	t.Run("absent decoration answers 204", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodGet, "/api/decorations?date=2026-08-30", token, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPut, "/api/decorations", token, models.SaveDecorationRequest{
			Date: "2026-08-30",
			Deco: deco,
		})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, body := doJSON(t, srv, http.MethodGet, "/api/decorations?date=2026-08-30", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Decoration
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, deco, got)
	})

	t.Run("malformed date answers 400", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPut, "/api/decorations", token, models.SaveDecorationRequest{
			Date: "someday",
			Deco: deco,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
