package domain

// Account accumulates what one user has been paid in one campaign.
// It is created on the first payment and removed only when the user
// leaves the campaign.
type Account struct {
	CampaignID         int64
	UserID             string
	PaidKz             int64
	TotalViewsPaid     int64
	CapReachedNotified bool
}

// RemainingCap returns how much more the user may be paid in c.
func (a Account) RemainingCap(c Campaign) int64 {
	if a.PaidKz >= c.MaxPayoutPerUser {
		return 0
	}
	return c.MaxPayoutPerUser - a.PaidKz
}

// CanFundBlock reports whether the user cap still leaves room for one more
// whole payable block.
func (a Account) CanFundBlock(c Campaign) bool {
	return c.RatePer1000 > 0 && a.RemainingCap(c) >= c.RatePer1000
}
