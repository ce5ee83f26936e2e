package httpadapter

import (
	"time"

	"viralizza/internal/core/domain"
)

type createCampaignRequest struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Slug             string   `json:"slug" validate:"omitempty,max=100"`
	RatePer1000      int64    `json:"rate_per_1000" validate:"required,gt=0"`
	Budget           int64    `json:"budget" validate:"required,gtefield=RatePer1000"`
	MaxPayoutPerUser int64    `json:"max_payout_per_user" validate:"required,gtefield=RatePer1000"`
	MaxPostsPerUser  int      `json:"max_posts_per_user" validate:"gte=0"`
	AllowedPlatforms []string `json:"allowed_platforms" validate:"required,min=1,dive,oneof=tiktok instagram youtube"`
}

type proposeSubmissionRequest struct {
	UserID   string `json:"user_id" validate:"required,max=128"`
	Platform string `json:"platform" validate:"omitempty,oneof=tiktok instagram youtube"`
	URL      string `json:"url" validate:"required,url,max=2048"`
}

type campaignResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	Slug             string                `json:"slug"`
	RatePer1000      int64                 `json:"rate_per_1000"`
	Budget           int64                 `json:"budget"`
	Spent            int64                 `json:"spent"`
	Remaining        int64                 `json:"remaining"`
	MaxPayoutPerUser int64                 `json:"max_payout_per_user"`
	MaxPostsPerUser  int                   `json:"max_posts_per_user"`
	AllowedPlatforms []domain.Platform     `json:"allowed_platforms"`
	Status           domain.CampaignStatus `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		RatePer1000:      c.RatePer1000,
		Budget:           c.Budget,
		Spent:            c.Spent,
		Remaining:        c.RemainingBudget(),
		MaxPayoutPerUser: c.MaxPayoutPerUser,
		MaxPostsPerUser:  c.MaxPostsPerUser,
		AllowedPlatforms: c.AllowedPlatforms,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type submissionResponse struct {
	ID           int64                   `json:"id"`
	CampaignID   int64                   `json:"campaign_id"`
	UserID       string                  `json:"user_id"`
	URL          string                  `json:"url"`
	Platform     domain.Platform         `json:"platform"`
	PostID       string                  `json:"post_id"`
	Status       domain.SubmissionStatus `json:"status"`
	ViewsCurrent int64                   `json:"views_current"`
	PaidViews    int64                   `json:"paid_views"`
	Quarantined  bool                    `json:"quarantined,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	ApprovedAt   *time.Time              `json:"approved_at,omitempty"`
}

func toSubmissionResponse(s domain.Submission) submissionResponse {
	return submissionResponse{
		ID:           s.ID,
		CampaignID:   s.CampaignID,
		UserID:       s.UserID,
		URL:          s.URL,
		Platform:     s.Platform,
		PostID:       s.PostID,
		Status:       s.Status,
		ViewsCurrent: s.ViewsCurrent,
		PaidViews:    s.PaidViews,
		Quarantined:  s.Quarantined,
		CreatedAt:    s.CreatedAt,
		ApprovedAt:   s.ApprovedAt,
	}
}
