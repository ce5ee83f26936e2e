package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

var _ port.LedgerRepository = (*Ledger)(nil)

type accountKey struct {
	campaignID int64
	userID     string
}

// Ledger implements port.LedgerRepository in process memory. A single
// mutex makes every method one atomic unit, which gives the same
// guarantees as the postgres row locks.
type Ledger struct {
	mu sync.Mutex

	campaigns   map[int64]domain.Campaign
	submissions map[int64]domain.Submission
	accounts    map[accountKey]domain.Account
	lastID      int64
	now         func() time.Time
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		campaigns:   make(map[int64]domain.Campaign),
		submissions: make(map[int64]domain.Submission),
		accounts:    make(map[accountKey]domain.Account),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (l *Ledger) nextID() int64 {
	l.lastID++
	return l.lastID
}

// CreateCampaign stores c and assigns its id. Slugs are unique.
func (l *Ledger) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.campaigns {
		if existing.Slug == c.Slug {
			return port.ErrSlugTaken
		}
	}
	now := l.now()
	c.ID = l.nextID()
	c.CreatedAt, c.UpdatedAt = now, now
	if c.Status == "" {
		c.Status = domain.CampaignActive
	}
	stored := *c
	stored.AllowedPlatforms = slices.Clone(c.AllowedPlatforms)
	l.campaigns[c.ID] = stored
	return nil
}

// GetCampaign returns a copy of the campaign, or nil when it does not exist.
func (l *Ledger) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return nil, nil
	}
	c.AllowedPlatforms = slices.Clone(c.AllowedPlatforms)
	return &c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (l *Ledger) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Campaign, 0, len(l.campaigns))
	for _, c := range l.campaigns {
		c.AllowedPlatforms = slices.Clone(c.AllowedPlatforms)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// EndCampaign marks the campaign ended. changed is false when it already was.
func (l *Ledger) EndCampaign(_ context.Context, id int64) (*domain.Campaign, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return nil, false, nil
	}
	changed := c.Status != domain.CampaignEnded
	if changed {
		c.Status = domain.CampaignEnded
		c.UpdatedAt = l.now()
		l.campaigns[id] = c
	}
	return &c, changed, nil
}

// CreateSubmission stores a pending submission while the campaign is active.
// A post already entered in the campaign, under any URL spelling, is
// rejected with port.ErrDuplicateURL.
func (l *Ledger) CreateSubmission(_ context.Context, s *domain.Submission) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[s.CampaignID]
	if !ok {
		return port.ErrCampaignNotFound
	}
	if c.Status != domain.CampaignActive {
		return port.ErrCampaignClosed
	}
	for _, existing := range l.submissions {
		if existing.CampaignID == s.CampaignID && samePost(existing, *s) {
			return port.ErrDuplicateURL
		}
	}
	now := l.now()
	s.ID = l.nextID()
	s.Status = domain.SubmissionPending
	s.CreatedAt, s.UpdatedAt = now, now
	l.submissions[s.ID] = *s
	return nil
}

// GetSubmission returns the submission, or nil when it does not exist.
func (l *Ledger) GetSubmission(_ context.Context, id int64) (*domain.Submission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.submissions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// CountUserSubmissions counts the user's pending and approved posts.
func (l *Ledger) CountUserSubmissions(_ context.Context, campaignID int64, userID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, s := range l.submissions {
		if s.CampaignID == campaignID && s.UserID == userID && s.Status.Countable() {
			n++
		}
	}
	return n, nil
}

// TransitionSubmission moves a submission from one status to another,
// failing with port.ErrInvalidTransition when it is not in from.
func (l *Ledger) TransitionSubmission(_ context.Context, id int64, from, to domain.SubmissionStatus) (*domain.Submission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.submissions[id]
	if !ok {
		return nil, port.ErrSubmissionNotFound
	}
	if s.Status != from || !from.CanTransition(to) {
		return nil, port.ErrInvalidTransition
	}
	now := l.now()
	s.Status = to
	s.UpdatedAt = now
	if to == domain.SubmissionApproved {
		s.ApprovedAt = &now
	}
	l.submissions[id] = s
	return &s, nil
}

// ListPollable returns approved, non-quarantined submissions of active and
// closing campaigns ordered by campaign and id.
func (l *Ledger) ListPollable(_ context.Context) ([]domain.Submission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Submission, 0)
	for _, s := range l.submissions {
		if s.Status != domain.SubmissionApproved || s.Quarantined {
			continue
		}
		if c, ok := l.campaigns[s.CampaignID]; !ok || !c.Status.Pollable() {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CampaignID != out[j].CampaignID {
			return out[i].CampaignID < out[j].CampaignID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetAccount returns the user's account, or nil before the first payment.
func (l *Ledger) GetAccount(_ context.Context, campaignID int64, userID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[accountKey{campaignID, userID}]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// ApplyAllocation runs allocate over the current campaign, account and
// submission and stores its result. The ledger mutex is held throughout,
// so concurrent allocations are serialised like the postgres row locks.
func (l *Ledger) ApplyAllocation(_ context.Context, submissionID int64, sample domain.ViewSample, allocate port.AllocateFunc) (domain.Allocation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.submissions[submissionID]
	if !ok {
		return domain.Allocation{}, port.ErrSubmissionNotFound
	}
	c, ok := l.campaigns[s.CampaignID]
	if !ok {
		return domain.Allocation{}, port.ErrCampaignNotFound
	}
	key := accountKey{s.CampaignID, s.UserID}
	acct := l.accounts[key]

	alloc, err := allocate(c, acct, s, sample)
	if errors.Is(err, domain.ErrLedgerInconsistent) {
		s.Quarantined = true
		s.UpdatedAt = l.now()
		l.submissions[s.ID] = s
		return alloc, err
	}
	if err != nil {
		return alloc, err
	}

	switch alloc.Outcome {
	case domain.OutcomeSkipped, domain.OutcomeIneligible:
		return alloc, nil
	}
	now := l.now()
	if alloc.Submission.ViewsCurrent != s.ViewsCurrent || alloc.Submission.PaidViews != s.PaidViews {
		alloc.Submission.UpdatedAt = now
		l.submissions[s.ID] = alloc.Submission
	}
	if alloc.Outcome == domain.OutcomePaid {
		l.accounts[key] = alloc.Account
	}
	if alloc.Campaign.Spent != c.Spent || alloc.Campaign.Status != c.Status {
		alloc.Campaign.UpdatedAt = now
		l.campaigns[c.ID] = alloc.Campaign
	}
	return alloc, nil
}

// ListStandings returns the campaign accounts ranked by payout, with the
// live views of each user's approved posts.
func (l *Ledger) ListStandings(_ context.Context, campaignID int64) ([]domain.AccountStanding, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	live := make(map[string]int64)
	for _, s := range l.submissions {
		if s.CampaignID == campaignID && s.Status == domain.SubmissionApproved {
			live[s.UserID] += s.ViewsCurrent
		}
	}
	out := make([]domain.AccountStanding, 0)
	for key, a := range l.accounts {
		if key.campaignID != campaignID {
			continue
		}
		out = append(out, domain.AccountStanding{Account: a, LiveViews: live[a.UserID]})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Account, out[j].Account
		if a.PaidKz != b.PaidKz {
			return a.PaidKz > b.PaidKz
		}
		if a.TotalViewsPaid != b.TotalViewsPaid {
			return a.TotalViewsPaid > b.TotalViewsPaid
		}
		return a.UserID < b.UserID
	})
	return out, nil
}

// ResetUser deletes the user's submissions and account in a campaign.
// Campaign spend is left unchanged.
func (l *Ledger) ResetUser(_ context.Context, campaignID int64, userID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var deleted int64
	for id, s := range l.submissions {
		if s.CampaignID == campaignID && s.UserID == userID {
			delete(l.submissions, id)
			deleted++
		}
	}
	delete(l.accounts, accountKey{campaignID, userID})
	return deleted, nil
}

// samePost reports whether a and b reference the same post.
func samePost(a, b domain.Submission) bool {
	if a.PostID != "" && b.PostID != "" {
		return a.Platform == b.Platform && a.PostID == b.PostID
	}
	return a.URL == b.URL
}
