package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// statusOf maps use case errors to HTTP status codes. Unknown errors are
// internal.
func statusOf(err error) int {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrSubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrDuplicateURL),
		errors.Is(err, port.ErrCampaignClosed),
		errors.Is(err, port.ErrPostLimitReached),
		errors.Is(err, port.ErrUserCapReached),
		errors.Is(err, port.ErrInvalidTransition),
		errors.Is(err, port.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, port.ErrPlatformNotAllowed),
		errors.Is(err, port.ErrInvalidURL),
		errors.Is(err, port.ErrInvalidCampaign),
		errors.Is(err, port.ErrUserIDRequired),
		errors.Is(err, domain.ErrUnsupportedPlatform):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs internal failures and writes a JSON error body. Internal
// error details are not exposed.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		h.writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: "validation failed"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, fe.Field()+": "+fe.Tag())
		}
	}
	h.writeJSON(w, http.StatusBadRequest, resp)
}
