package domain

import "time"

// DefaultLeaderboardSize is the number of ranked entries published.
const DefaultLeaderboardSize = 10

// LeaderboardEntry is one ranked participant.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"user_id"`
	PaidKz         int64  `json:"paid_kz"`
	TotalViewsPaid int64  `json:"total_views_paid"`
	LiveViews      int64  `json:"live_views"`
}

// Leaderboard is the read model of a campaign's ledger.
type Leaderboard struct {
	CampaignID     int64              `json:"campaign_id"`
	CampaignName   string             `json:"campaign_name"`
	Status         CampaignStatus     `json:"status"`
	Spent          int64              `json:"spent"`
	Budget         int64              `json:"budget"`
	Remaining      int64              `json:"remaining"`
	SpentPercent   float64            `json:"spent_percent"`
	Participants   int                `json:"participants"`
	TotalLiveViews int64              `json:"total_live_views"`
	Entries        []LeaderboardEntry `json:"entries"`
	GeneratedAt    time.Time          `json:"generated_at"`
}

// AccountStanding pairs an account with the live views of the user's
// approved submissions.
type AccountStanding struct {
	Account   Account
	LiveViews int64
}
