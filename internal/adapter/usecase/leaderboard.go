package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

// LeaderboardProjector builds the ranked campaign summary from ledger
// state. It holds no state of its own and never writes to the ledger.
type LeaderboardProjector struct {
	repo port.LedgerRepository
	size int
	now  func() time.Time
}

// NewLeaderboardProjector returns a projector publishing the top size
// entries. size <= 0 selects domain.DefaultLeaderboardSize.
func NewLeaderboardProjector(repo port.LedgerRepository, size int) *LeaderboardProjector {
	if size <= 0 {
		size = domain.DefaultLeaderboardSize
	}
	return &LeaderboardProjector{repo: repo, size: size, now: time.Now}
}

// Project ranks accounts by paid amount, then paid views, then user id.
func (p *LeaderboardProjector) Project(ctx context.Context, campaignID int64) (*domain.Leaderboard, error) {
	c, err := p.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	standings, err := p.repo.ListStandings(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i].Account, standings[j].Account
		if a.PaidKz != b.PaidKz {
			return a.PaidKz > b.PaidKz
		}
		if a.TotalViewsPaid != b.TotalViewsPaid {
			return a.TotalViewsPaid > b.TotalViewsPaid
		}
		return a.UserID < b.UserID
	})

	lb := &domain.Leaderboard{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Status:       c.Status,
		Spent:        c.Spent,
		Budget:       c.Budget,
		Remaining:    c.RemainingBudget(),
		SpentPercent: spentPercent(c.Spent, c.Budget),
		Participants: len(standings),
		Entries:      make([]domain.LeaderboardEntry, 0, min(len(standings), p.size)),
		GeneratedAt:  p.now().UTC(),
	}
	for i, st := range standings {
		lb.TotalLiveViews += st.LiveViews
		if i >= p.size {
			continue
		}
		lb.Entries = append(lb.Entries, domain.LeaderboardEntry{
			Rank:           i + 1,
			UserID:         st.Account.UserID,
			PaidKz:         st.Account.PaidKz,
			TotalViewsPaid: st.Account.TotalViewsPaid,
			LiveViews:      st.LiveViews,
		})
	}
	return lb, nil
}

// spentPercent returns spent/budget as a percentage rounded to two
// decimals.
func spentPercent(spent, budget int64) float64 {
	if budget <= 0 {
		return 0
	}
	return math.Round(float64(spent)*10000/float64(budget)) / 100
}
