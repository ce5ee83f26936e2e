package port

import (
	"context"

	"viralizza/internal/core/domain"
)

// PayoutUseCase defines the business operations exposed by the payout
// engine. This interface represents the primary port into the application
// domain.
type PayoutUseCase interface {
	// CreateCampaign validates the reward terms and stores an active campaign.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns a campaign or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// EndCampaign terminates a campaign manually. Ending an ended campaign
	// is a no-op.
	EndCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ProposeSubmission enters a post into a campaign as pending.
	ProposeSubmission(ctx context.Context, req ProposeReq) (*domain.Submission, error)
	// Approve moves a pending submission to approved and takes a best-effort
	// initial view sample.
	Approve(ctx context.Context, submissionID int64) (*domain.Submission, error)
	// Reject moves a pending submission to rejected.
	Reject(ctx context.Context, submissionID int64) (*domain.Submission, error)
	// Remove withdraws an approved submission. Paid amounts are kept.
	Remove(ctx context.Context, submissionID int64) (*domain.Submission, error)
	// ResetUser deletes the user's submissions and account in a campaign.
	// It is idempotent.
	ResetUser(ctx context.Context, campaignID int64, userID string) error

	// ProcessSample converts a view sample into payment for one submission
	// and emits the resulting notifications.
	ProcessSample(ctx context.Context, submissionID int64, sample domain.ViewSample) (domain.Allocation, error)
	// Leaderboard projects the ranked summary of a campaign.
	Leaderboard(ctx context.Context, campaignID int64) (*domain.Leaderboard, error)
	// PublishLeaderboard projects and pushes the summary to the display
	// surface.
	PublishLeaderboard(ctx context.Context, campaignID int64) error
}

// CreateCampaignReq carries operator input for a new campaign.
type CreateCampaignReq struct {
	Name             string
	Slug             string
	RatePer1000      int64
	Budget           int64
	MaxPayoutPerUser int64
	MaxPostsPerUser  int
	AllowedPlatforms []domain.Platform
}

// ProposeReq carries a user's post submission. Platform may be empty, in
// which case it is detected from the URL.
type ProposeReq struct {
	CampaignID int64
	UserID     string
	Platform   string
	URL        string
}
