package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

func (h *Handler) saveDecoration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SaveDecorationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	if err := h.services.MemoryService.SaveDecoration(ctx, username, req.Date, req.Deco); err != nil {
		log.Err(err).Str("date", req.Date).Msg("saving decoration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getDecoration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, _ := utils.GetUsernameFromContext(ctx)
	date := r.URL.Query().Get("date")

	deco, found, err := h.services.MemoryService.GetDecoration(ctx, username, date)
	if err != nil {
		log.Err(err).Str("date", date).Msg("reading decoration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, deco, http.StatusOK)
}
