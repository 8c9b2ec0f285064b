package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	group, err := h.services.GroupService.CreateGroup(ctx, username, req.GroupName, req.Members)
	if err != nil {
		log.Err(err).Str("group_name", req.GroupName).Msg("group creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, group, http.StatusCreated)
}

func (h *Handler) myGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, _ := utils.GetUsernameFromContext(ctx)

	groups, err := h.services.GroupService.MyGroups(ctx, username)
	if err != nil {
		log.Err(err).Msg("listing groups failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GroupMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	if err := h.services.GroupService.AddMember(ctx, username, req.GroupName, req.Username); err != nil {
		log.Err(err).Str("group_name", req.GroupName).Str("member", req.Username).Msg("adding member failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) leaveGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LeaveGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username, _ := utils.GetUsernameFromContext(ctx)

	if err := h.services.GroupService.LeaveGroup(ctx, req.GroupName, username); err != nil {
		log.Err(err).Str("group_name", req.GroupName).Msg("leaving group failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
