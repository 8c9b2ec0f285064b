package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

func (h *Handler) todayStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, _ := utils.GetUsernameFromContext(ctx)
	today := time.Now().Format(models.DateLayout)

	submitted, err := h.services.RecordService.HasSubmitted(ctx, username, today)
	if err != nil {
		log.Err(err).Msg("today status check failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TodayStatusResponse{Submitted: submitted}, http.StatusOK)
}

func (h *Handler) submitRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)
	if role != models.RoleReceiver {
		http.Error(w, "only receivers submit daily records", http.StatusForbidden)
		return
	}

	var req models.SubmitRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)
	rec := models.DailyRecord{
		Username: username,
		Date:     req.Date,
		Answers:  req.Answers,
		Memo:     req.Memo,
	}

	if err := h.services.RecordService.Submit(ctx, rec); err != nil {
		log.Err(err).Str("date", req.Date).Msg("record submission failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) monitorRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)
	if role != models.RoleSender {
		http.Error(w, "only senders monitor records", http.StatusForbidden)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	records, err := h.services.RecordService.Monitor(ctx, username)
	if err != nil {
		log.Err(err).Msg("monitoring query failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if records == nil {
		records = []models.DailyRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) defaultQuestions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.RecordService.DefaultQuestions(), http.StatusOK)
}
