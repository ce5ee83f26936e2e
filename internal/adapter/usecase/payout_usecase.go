package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Options tunes a PayoutUseCase. Zero values select the defaults.
type Options struct {
	// ClosingThreshold is the spend ratio that moves a campaign to closing.
	ClosingThreshold float64
	// LeaderboardSize is the number of ranked entries projected.
	LeaderboardSize int
	// SampleTimeout bounds the initial view sample taken on approval.
	SampleTimeout time.Duration
	Logger        *slog.Logger
}

// PayoutUseCase provides business logic for submissions, payouts and the
// campaign lifecycle. It orchestrates the ledger repository and the
// outbound gateways to implement port.PayoutUseCase.
type PayoutUseCase struct {
	repo      port.LedgerRepository
	provider  port.ViewProvider
	notifier  port.Notifier
	publisher port.LeaderboardPublisher

	allocator     domain.Allocator
	projector     *LeaderboardProjector
	sampleTimeout time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewPayoutUseCase creates a use case over repo. provider may be nil, in
// which case approvals do not take an initial sample. notifier and
// publisher may be nil to disable events and leaderboard pushes.
func NewPayoutUseCase(
	repo port.LedgerRepository,
	provider port.ViewProvider,
	notifier port.Notifier,
	publisher port.LeaderboardPublisher,
	opts Options,
) *PayoutUseCase {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.SampleTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PayoutUseCase{
		repo:          repo,
		provider:      provider,
		notifier:      notifier,
		publisher:     publisher,
		allocator:     domain.NewAllocator(domain.NewLifecycle(opts.ClosingThreshold)),
		projector:     NewLeaderboardProjector(repo, opts.LeaderboardSize),
		sampleTimeout: timeout,
		logger:        logger.With("component", "payout"),
		now:           time.Now,
	}
}

// CreateCampaign validates the reward terms and stores an active campaign.
// An empty slug is derived from the name.
func (u *PayoutUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	c := domain.Campaign{
		Name:             strings.TrimSpace(req.Name),
		Slug:             strings.TrimSpace(req.Slug),
		RatePer1000:      req.RatePer1000,
		Budget:           req.Budget,
		MaxPayoutPerUser: req.MaxPayoutPerUser,
		MaxPostsPerUser:  req.MaxPostsPerUser,
		Status:           domain.CampaignActive,
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	for _, p := range req.AllowedPlatforms {
		parsed, err := domain.ParsePlatform(string(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", port.ErrInvalidCampaign, err)
		}
		if !slices.Contains(c.AllowedPlatforms, parsed) {
			c.AllowedPlatforms = append(c.AllowedPlatforms, parsed)
		}
	}
	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	if err := u.repo.CreateCampaign(ctx, &c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.String("slug", c.Slug),
		slog.Int64("budget", c.Budget),
		slog.Int64("rate_per_1000", c.RatePer1000),
	)
	return &c, nil
}

// GetCampaign returns a campaign by id.
func (u *PayoutUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// ListCampaigns returns all campaigns.
func (u *PayoutUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// EndCampaign terminates a campaign. Approved submissions stop accruing
// payment from the next pass on.
func (u *PayoutUseCase) EndCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, changed, err := u.repo.EndCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	if changed {
		u.logger.Info("campaign ended manually", slog.Int64("campaign_id", id))
		u.notify(ctx, domain.EventCampaignEnded, id, "", map[string]string{"reason": "manual"})
		u.republish(ctx, id)
	}
	return c, nil
}

// ProposeSubmission checks the campaign's eligibility rules and stores the
// post as pending. The closed check is repeated atomically by the store.
func (u *PayoutUseCase) ProposeSubmission(ctx context.Context, req port.ProposeReq) (*domain.Submission, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, port.ErrUserIDRequired
	}
	ref, err := domain.ParsePostURL(req.URL)
	if err != nil {
		return nil, err
	}
	platform := ref.Platform
	if req.Platform != "" {
		declared, err := domain.ParsePlatform(req.Platform)
		if err != nil {
			return nil, err
		}
		if declared != platform {
			return nil, fmt.Errorf("%w: url is a %s post, not %s", port.ErrInvalidURL, platform, declared)
		}
	}
	postURL, err := domain.NormalizePostURL(req.URL)
	if err != nil {
		return nil, err
	}

	c, err := u.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	// the stored status lags a lowered closing threshold until the next payment
	c.Status = u.allocator.Lifecycle().Next(*c)
	if !c.AcceptsSubmissions() {
		return nil, port.ErrCampaignClosed
	}
	if !c.AllowsPlatform(platform) {
		return nil, port.ErrPlatformNotAllowed
	}
	acct, err := u.repo.GetAccount(ctx, c.ID, userID)
	if err != nil {
		return nil, err
	}
	if acct != nil && !acct.CanFundBlock(*c) {
		return nil, port.ErrUserCapReached
	}
	if c.MaxPostsPerUser > 0 {
		n, err := u.repo.CountUserSubmissions(ctx, c.ID, userID)
		if err != nil {
			return nil, err
		}
		if n >= c.MaxPostsPerUser {
			return nil, port.ErrPostLimitReached
		}
	}

	s := &domain.Submission{
		CampaignID: c.ID,
		UserID:     userID,
		URL:        postURL,
		Platform:   platform,
		PostID:     ref.ID,
		Status:     domain.SubmissionPending,
	}
	if err = u.repo.CreateSubmission(ctx, s); err != nil {
		return nil, err
	}
	u.logger.Info("submission proposed",
		slog.Int64("submission_id", s.ID),
		slog.Int64("campaign_id", s.CampaignID),
		slog.String("user_id", s.UserID),
		slog.String("platform", string(s.Platform)),
	)
	return s, nil
}

// Approve moves a pending submission to approved. When a provider is
// configured one view sample is taken immediately; its failure does not
// fail the approval.
func (u *PayoutUseCase) Approve(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	s, err := u.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, port.ErrSubmissionNotFound
	}
	c, err := u.GetCampaign(ctx, s.CampaignID)
	if err != nil {
		return nil, err
	}
	if !u.allocator.Lifecycle().Next(*c).Pollable() {
		return nil, port.ErrCampaignClosed
	}
	s, err = u.repo.TransitionSubmission(ctx, submissionID, domain.SubmissionPending, domain.SubmissionApproved)
	if err != nil {
		return nil, err
	}
	u.logger.Info("submission approved", slog.Int64("submission_id", s.ID), slog.Int64("campaign_id", s.CampaignID))

	if u.provider == nil {
		return s, nil
	}
	sampleCtx, cancel := context.WithTimeout(ctx, u.sampleTimeout)
	views, err := u.provider.FetchViews(sampleCtx, s.Platform, s.URL)
	cancel()
	if err != nil {
		u.logger.Warn("initial view sample failed",
			slog.Int64("submission_id", s.ID),
			slog.Any("error", err),
		)
		return s, nil
	}
	alloc, err := u.ProcessSample(ctx, s.ID, domain.SampleOf(views))
	if err != nil {
		u.logger.Error("initial allocation failed", slog.Int64("submission_id", s.ID), slog.Any("error", err))
		return s, nil
	}
	if alloc.Outcome == domain.OutcomePaid {
		u.republish(ctx, s.CampaignID)
	}
	if alloc.Outcome != domain.OutcomeSkipped && alloc.Outcome != domain.OutcomeIneligible {
		return &alloc.Submission, nil
	}
	return s, nil
}

// Reject moves a pending submission to rejected.
func (u *PayoutUseCase) Reject(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	s, err := u.repo.TransitionSubmission(ctx, submissionID, domain.SubmissionPending, domain.SubmissionRejected)
	if err != nil {
		return nil, err
	}
	u.logger.Info("submission rejected", slog.Int64("submission_id", s.ID), slog.Int64("campaign_id", s.CampaignID))
	return s, nil
}

// Remove withdraws an approved submission. It is no longer polled but its
// paid views and the user's account are kept.
func (u *PayoutUseCase) Remove(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	s, err := u.repo.TransitionSubmission(ctx, submissionID, domain.SubmissionApproved, domain.SubmissionRemoved)
	if err != nil {
		return nil, err
	}
	u.logger.Info("submission removed", slog.Int64("submission_id", s.ID), slog.Int64("campaign_id", s.CampaignID))
	u.republish(ctx, s.CampaignID)
	return s, nil
}

// ResetUser deletes the user's submissions and account in a campaign,
// returning them to a pristine state. Calling it again is a no-op.
func (u *PayoutUseCase) ResetUser(ctx context.Context, campaignID int64, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return port.ErrUserIDRequired
	}
	if _, err := u.GetCampaign(ctx, campaignID); err != nil {
		return err
	}
	deleted, err := u.repo.ResetUser(ctx, campaignID, userID)
	if err != nil {
		return err
	}
	u.logger.Info("user left campaign",
		slog.Int64("campaign_id", campaignID),
		slog.String("user_id", userID),
		slog.Int64("deleted_submissions", deleted),
	)
	if deleted > 0 {
		u.republish(ctx, campaignID)
	}
	return nil
}

// ProcessSample runs the allocator for one submission inside a ledger
// transaction. An unavailable sample is a no-op. Inconsistent ledger
// records are quarantined by the store and reported as an error.
func (u *PayoutUseCase) ProcessSample(ctx context.Context, submissionID int64, sample domain.ViewSample) (domain.Allocation, error) {
	if !sample.Available {
		return domain.Allocation{Outcome: domain.OutcomeSkipped}, nil
	}
	alloc, err := u.repo.ApplyAllocation(ctx, submissionID, sample, u.allocator.Allocate)
	if errors.Is(err, domain.ErrLedgerInconsistent) {
		u.logger.Error("LEDGER INCONSISTENCY: submission quarantined",
			slog.Int64("submission_id", submissionID),
			slog.Int64("views_current", alloc.Submission.ViewsCurrent),
			slog.Int64("paid_views", alloc.Submission.PaidViews),
			slog.Any("error", err),
		)
		return alloc, err
	}
	if err != nil {
		return alloc, err
	}

	if alloc.Outcome == domain.OutcomePaid {
		u.logger.Debug("submission paid",
			slog.Int64("submission_id", submissionID),
			slog.Int64("delta_views", alloc.DeltaViews),
			slog.Int64("delta_kz", alloc.DeltaKz),
			slog.Int64("campaign_spent", alloc.Campaign.Spent),
		)
	}
	if alloc.UserCapped {
		u.notify(ctx, domain.EventUserCapped, alloc.Campaign.ID, alloc.Account.UserID, map[string]string{
			"paid_kz": fmt.Sprint(alloc.Account.PaidKz),
		})
	}
	if alloc.StatusChanged() {
		u.logger.Info("campaign status changed",
			slog.Int64("campaign_id", alloc.Campaign.ID),
			slog.String("from", string(alloc.PreviousStatus)),
			slog.String("to", string(alloc.Campaign.Status)),
		)
		if t, ok := domain.StatusEventType(alloc.Campaign.Status); ok {
			u.notify(ctx, t, alloc.Campaign.ID, "", map[string]string{
				"spent":  fmt.Sprint(alloc.Campaign.Spent),
				"budget": fmt.Sprint(alloc.Campaign.Budget),
			})
		}
	}
	return alloc, nil
}

// Leaderboard projects the ranked summary of a campaign.
func (u *PayoutUseCase) Leaderboard(ctx context.Context, campaignID int64) (*domain.Leaderboard, error) {
	return u.projector.Project(ctx, campaignID)
}

// PublishLeaderboard projects the campaign and pushes the result to the
// configured publisher.
func (u *PayoutUseCase) PublishLeaderboard(ctx context.Context, campaignID int64) error {
	if u.publisher == nil {
		return nil
	}
	lb, err := u.projector.Project(ctx, campaignID)
	if err != nil {
		return err
	}
	return u.publisher.PublishLeaderboard(ctx, *lb)
}

// republish refreshes the leaderboard after a manual change. Failures are
// logged only.
func (u *PayoutUseCase) republish(ctx context.Context, campaignID int64) {
	if err := u.PublishLeaderboard(ctx, campaignID); err != nil {
		u.logger.Warn("leaderboard publish failed", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
	}
}

func (u *PayoutUseCase) notify(ctx context.Context, t domain.EventType, campaignID int64, userID string, data map[string]string) {
	if u.notifier == nil {
		return
	}
	ev := domain.Event{
		ID:         uuid.NewString(),
		Type:       t,
		CampaignID: campaignID,
		UserID:     userID,
		OccurredAt: u.now().UTC(),
		Data:       data,
	}
	if err := u.notifier.Notify(ctx, ev); err != nil {
		u.logger.Warn("notification dropped",
			slog.String("event_type", string(t)),
			slog.Int64("campaign_id", campaignID),
			slog.Any("error", err),
		)
	}
}

func validateCampaign(c domain.Campaign) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name is required", port.ErrInvalidCampaign)
	case !slugPattern.MatchString(c.Slug):
		return fmt.Errorf("%w: slug %q is not url safe", port.ErrInvalidCampaign, c.Slug)
	case c.RatePer1000 <= 0:
		return fmt.Errorf("%w: rate per 1000 views must be positive", port.ErrInvalidCampaign)
	case c.Budget < c.RatePer1000:
		return fmt.Errorf("%w: budget must fund at least one block", port.ErrInvalidCampaign)
	case c.MaxPayoutPerUser < c.RatePer1000:
		return fmt.Errorf("%w: user cap must fund at least one block", port.ErrInvalidCampaign)
	case c.MaxPostsPerUser < 0:
		return fmt.Errorf("%w: post limit must not be negative", port.ErrInvalidCampaign)
	case len(c.AllowedPlatforms) == 0:
		return fmt.Errorf("%w: at least one platform is required", port.ErrInvalidCampaign)
	}
	return nil
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
