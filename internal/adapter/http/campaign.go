package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

// handleCreateCampaign creates an active campaign from the JSON body.
// Malformed JSON and failed validation produce HTTP 400, terms the use
// case refuses produce HTTP 422 and a taken slug HTTP 409.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.writeValidationError(w, err)
		return
	}
	platforms := make([]domain.Platform, 0, len(req.AllowedPlatforms))
	for _, p := range req.AllowedPlatforms {
		platforms = append(platforms, domain.Platform(p))
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Name:             req.Name,
		Slug:             req.Slug,
		RatePer1000:      req.RatePer1000,
		Budget:           req.Budget,
		MaxPayoutPerUser: req.MaxPayoutPerUser,
		MaxPostsPerUser:  req.MaxPostsPerUser,
		AllowedPlatforms: platforms,
	})
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleEndCampaign terminates a campaign. Ending an ended campaign
// returns it unchanged.
func (h *Handler) handleEndCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	c, err := h.svc.EndCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "end campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleResetUser removes a user from a campaign. It answers 204 whether
// or not the user had anything to remove.
func (h *Handler) handleResetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	if err := h.svc.ResetUser(r.Context(), id, chi.URLParam(r, "user_id")); err != nil {
		h.writeError(w, "reset user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	lb, err := h.svc.Leaderboard(r.Context(), id)
	if err != nil {
		h.writeError(w, "leaderboard", err)
		return
	}
	h.writeJSON(w, http.StatusOK, lb)
}
