package port

import (
	"context"

	"viralizza/internal/core/domain"
)

// AllocateFunc computes the allocation for a locked snapshot of the ledger.
// It is called by the repository inside the transaction that persists the
// result.
type AllocateFunc func(c domain.Campaign, a domain.Account, s domain.Submission, sample domain.ViewSample) (domain.Allocation, error)

// LedgerRepository is the durable store of campaigns, submissions and
// per-(campaign,user) accounts. It is an outbound port in hexagonal
// architecture. Implementations must be concurrency-safe and persist every
// allocation atomically.
type LedgerRepository interface {
	// CreateCampaign stores c and fills its ID and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// EndCampaign moves the campaign to ended under its row lock. The bool
	// reports whether the status changed.
	EndCampaign(ctx context.Context, id int64) (*domain.Campaign, bool, error)

	// CreateSubmission inserts a pending submission. It returns
	// ErrCampaignClosed when the campaign is no longer active at insert
	// time and ErrDuplicateURL when the URL is already in the campaign.
	CreateSubmission(ctx context.Context, s *domain.Submission) error
	// GetSubmission returns a submission by id, or nil when it does not exist.
	GetSubmission(ctx context.Context, id int64) (*domain.Submission, error)
	// CountUserSubmissions counts the user's pending and approved
	// submissions in a campaign.
	CountUserSubmissions(ctx context.Context, campaignID int64, userID string) (int, error)
	// TransitionSubmission moves a submission from one status to another.
	// It returns ErrInvalidTransition when the current status is not from.
	TransitionSubmission(ctx context.Context, id int64, from, to domain.SubmissionStatus) (*domain.Submission, error)
	// ListPollable returns approved, non-quarantined submissions of active
	// and closing campaigns ordered by campaign and id.
	ListPollable(ctx context.Context) ([]domain.Submission, error)

	// GetAccount returns the user's account in a campaign, or nil.
	GetAccount(ctx context.Context, campaignID int64, userID string) (*domain.Account, error)
	// ApplyAllocation locks the campaign, loads the submission and account,
	// runs allocate and writes the result in one transaction. When allocate
	// returns domain.ErrLedgerInconsistent the submission is quarantined.
	ApplyAllocation(ctx context.Context, submissionID int64, sample domain.ViewSample, allocate AllocateFunc) (domain.Allocation, error)
	// ListStandings returns the campaign's accounts ordered by paid amount
	// and paid views, each with the live views of the user's approved
	// submissions.
	ListStandings(ctx context.Context, campaignID int64) ([]domain.AccountStanding, error)
	// ResetUser deletes the user's submissions and account in a campaign
	// and returns the number of deleted submissions.
	ResetUser(ctx context.Context, campaignID int64, userID string) (int64, error)
}
