package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

func (h *Handler) addMemory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AddMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	entry, err := h.services.MemoryService.AddEntry(ctx, username, req.Date, req.Title, req.Text)
	if err != nil {
		log.Err(err).Str("date", req.Date).Msg("adding memory entry failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listMemories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, _ := utils.GetUsernameFromContext(ctx)
	date := r.URL.Query().Get("date")

	entries, err := h.services.MemoryService.ListEntries(ctx, username, date)
	if err != nil {
		log.Err(err).Str("date", date).Msg("listing memory entries failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if entries == nil {
		entries = []models.MemoryEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
