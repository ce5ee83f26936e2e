package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

// handleProposeSubmission enters a post into the campaign as pending.
// Eligibility failures map to 409 or 422 so the front end can tell the
// creator what went wrong.
func (h *Handler) handleProposeSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign id"})
		return
	}
	var req proposeSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.writeValidationError(w, err)
		return
	}
	s, err := h.svc.ProposeSubmission(r.Context(), port.ProposeReq{
		CampaignID: id,
		UserID:     req.UserID,
		Platform:   req.Platform,
		URL:        req.URL,
	})
	if err != nil {
		h.writeError(w, "propose submission", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSubmissionResponse(*s))
}

type transitionFunc func(ctx context.Context, submissionID int64) (*domain.Submission, error)

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "approve submission", h.svc.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reject submission", h.svc.Reject)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "remove submission", h.svc.Remove)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op string, fn transitionFunc) {
	id, ok := pathID(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid submission id"})
		return
	}
	s, err := fn(r.Context(), id)
	if err != nil {
		h.writeError(w, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSubmissionResponse(*s))
}
