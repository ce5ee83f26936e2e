package domain

import "math"

// DefaultClosingThreshold is the spend ratio at which a campaign stops
// accepting new submissions.
const DefaultClosingThreshold = 0.95

// Lifecycle derives the campaign status from its ledger counters. The
// threshold is held in basis points so the comparison stays in integers.
type Lifecycle struct {
	closingBP int64
}

// NewLifecycle returns a Lifecycle closing campaigns at the given spend
// ratio. Values outside (0,1] fall back to DefaultClosingThreshold.
func NewLifecycle(threshold float64) Lifecycle {
	if threshold <= 0 || threshold > 1 || math.IsNaN(threshold) {
		threshold = DefaultClosingThreshold
	}
	return Lifecycle{closingBP: int64(math.Round(threshold * 10000))}
}

// Next returns the status c must have given its spend. The result never
// ranks below c.Status.
func (l Lifecycle) Next(c Campaign) CampaignStatus {
	derived := CampaignActive
	switch {
	case c.Spent >= c.Budget || c.RemainingBudget() < c.RatePer1000:
		derived = CampaignEnded
	case c.Spent*10000 >= l.closingBP*c.Budget:
		derived = CampaignClosing
	}
	if c.Status.rank() > derived.rank() {
		return c.Status
	}
	return derived
}

// Apply updates c.Status in place and reports whether it changed.
func (l Lifecycle) Apply(c *Campaign) bool {
	next := l.Next(*c)
	if next == c.Status {
		return false
	}
	c.Status = next
	return true
}
