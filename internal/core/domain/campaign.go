package domain

import (
	"slices"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign. It only moves
// forward: active -> closing -> ended.
type CampaignStatus string

const (
	CampaignActive  CampaignStatus = "active"
	CampaignClosing CampaignStatus = "closing"
	CampaignEnded   CampaignStatus = "ended"
)

// rank orders statuses so transitions can be checked for monotonicity.
func (s CampaignStatus) rank() int {
	switch s {
	case CampaignActive:
		return 0
	case CampaignClosing:
		return 1
	case CampaignEnded:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool { return s.rank() >= 0 }

// Pollable reports whether submissions of a campaign in this status still
// accrue payment.
func (s CampaignStatus) Pollable() bool {
	return s == CampaignActive || s == CampaignClosing
}

// Campaign represents a funded promotional campaign.
// Money is stored in integer currency units (kz).
type Campaign struct {
	ID               int64
	Name             string
	Slug             string
	RatePer1000      int64 // kz paid per 1000 views
	Budget           int64
	MaxPayoutPerUser int64
	MaxPostsPerUser  int // concurrently countable posts (pending + approved) per user
	AllowedPlatforms []Platform
	Spent            int64
	Status           CampaignStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RemainingBudget returns the part of the budget not yet paid out.
func (c Campaign) RemainingBudget() int64 {
	if c.Spent >= c.Budget {
		return 0
	}
	return c.Budget - c.Spent
}

// AllowsPlatform reports whether posts from p may be entered.
func (c Campaign) AllowsPlatform(p Platform) bool {
	return slices.Contains(c.AllowedPlatforms, p)
}

// AcceptsSubmissions reports whether new posts may be proposed.
func (c Campaign) AcceptsSubmissions() bool {
	return c.Status == CampaignActive
}
