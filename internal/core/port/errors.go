package port

import (
	"errors"

	"viralizza/internal/core/domain"
)

// Eligibility errors are returned synchronously to the caller and never
// retried automatically.
var (
	ErrDuplicateURL       = errors.New("post url already submitted to this campaign")
	ErrCampaignClosed     = errors.New("campaign is not accepting submissions")
	ErrPlatformNotAllowed = errors.New("platform not allowed for campaign")
	ErrPostLimitReached   = errors.New("post limit reached for campaign")
	ErrUserCapReached     = errors.New("user payout cap reached for campaign")
	ErrInvalidURL         = domain.ErrInvalidPostURL
	ErrUserIDRequired     = errors.New("user id is required")
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidTransition  = errors.New("invalid submission status transition")
	ErrSlugTaken          = errors.New("campaign slug already in use")
	ErrInvalidCampaign    = errors.New("invalid campaign terms")
	ErrViewsUnavailable   = errors.New("view count unavailable")
)
