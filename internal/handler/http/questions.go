package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)
	if role != models.RoleSender {
		http.Error(w, "only senders author questions", http.StatusForbidden)
		return
	}

	var q models.CustomQuestion
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)
	q.Creator = username

	created, err := h.services.QuestionService.Create(ctx, q)
	if err != nil {
		log.Err(err).Msg("question creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.QuestionCreatedResponse{ID: created.ID}, http.StatusCreated)
}

// myQuestions lists the custom questions targeting the authenticated
// receiver, in creation order.
func (h *Handler) myQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, _ := utils.GetRoleFromContext(ctx)
	if role != models.RoleReceiver {
		http.Error(w, "only receivers are targeted by questions", http.StatusForbidden)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	questions, err := h.services.QuestionService.ForReceiver(ctx, username)
	if err != nil {
		log.Err(err).Msg("listing questions failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if questions == nil {
		questions = []models.CustomQuestion{}
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}
