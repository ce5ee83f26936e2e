package domain

import "errors"

// BlockSize is the number of views that make up one payable block.
const BlockSize int64 = 1000

// ErrLedgerInconsistent marks a submission whose stored counters violate
// the ledger invariants. Such records are quarantined, never repaired.
var ErrLedgerInconsistent = errors.New("ledger inconsistency")

// ViewSample is one reading from the view count provider.
type ViewSample struct {
	Views     int64
	Available bool
}

// SampleOf wraps a successful provider reading.
func SampleOf(views int64) ViewSample {
	return ViewSample{Views: views, Available: views >= 0}
}

// Outcome classifies what an allocation did.
type Outcome string

const (
	OutcomeSkipped         Outcome = "skipped"
	OutcomeIneligible      Outcome = "ineligible"
	OutcomeNoPayableBlocks Outcome = "no_payable_blocks"
	OutcomeCapped          Outcome = "capped"
	OutcomePaid            Outcome = "paid"
)

// Allocation is the result of converting one sample into payment. The
// Campaign, Account and Submission fields hold the state to persist.
type Allocation struct {
	Outcome        Outcome
	Campaign       Campaign
	Account        Account
	Submission     Submission
	DeltaViews     int64
	DeltaKz        int64
	PreviousStatus CampaignStatus
	UserCapped     bool // first time the account hit the user cap exactly
}

// StatusChanged reports whether the allocation moved the campaign to a new
// lifecycle state.
func (a Allocation) StatusChanged() bool {
	return a.PreviousStatus != "" && a.Campaign.Status != a.PreviousStatus
}

// ViewFloor decides the stored view count given the stored value and a new
// sample.
type ViewFloor func(stored, sampled int64) int64

// MonotonicFloor keeps the highest count ever observed. A lower sample is
// treated as stale and does not lower the stored value.
func MonotonicFloor(stored, sampled int64) int64 {
	return max(stored, sampled)
}

// Allocator turns view samples into bounded, block-quantized payments.
type Allocator struct {
	lifecycle Lifecycle
	floor     ViewFloor
}

// NewAllocator returns an Allocator using MonotonicFloor.
func NewAllocator(l Lifecycle) Allocator {
	return Allocator{lifecycle: l, floor: MonotonicFloor}
}

// WithFloor returns a copy of a using f as view floor policy.
func (a Allocator) WithFloor(f ViewFloor) Allocator {
	a.floor = f
	return a
}

// Lifecycle exposes the lifecycle rules the allocator applies.
func (a Allocator) Lifecycle() Lifecycle { return a.lifecycle }

// Allocate applies one sample to a submission. The caller must persist the
// returned state atomically. The user cap is applied before the budget cap
// and both round down to whole blocks.
func (a Allocator) Allocate(c Campaign, acct Account, s Submission, sample ViewSample) (Allocation, error) {
	acct.CampaignID, acct.UserID = s.CampaignID, s.UserID
	res := Allocation{
		Outcome:        OutcomeSkipped,
		Campaign:       c,
		Account:        acct,
		Submission:     s,
		PreviousStatus: c.Status,
	}
	if !sample.Available {
		return res, nil
	}
	if s.Status != SubmissionApproved || s.Quarantined || !c.Status.Pollable() || s.CampaignID != c.ID {
		res.Outcome = OutcomeIneligible
		return res, nil
	}
	if err := s.CheckLedger(); err != nil {
		return res, err
	}
	if acct.PaidKz < 0 || acct.PaidKz > c.MaxPayoutPerUser || c.Spent < 0 || c.Spent > c.Budget || c.RatePer1000 <= 0 {
		return res, ErrLedgerInconsistent
	}

	s.ViewsCurrent = a.floor(s.ViewsCurrent, sample.Views)
	res.Submission = s

	payable := s.ViewsCurrent / BlockSize * BlockSize
	deltaViews := payable - s.PaidViews
	if deltaViews < BlockSize {
		res.Outcome = OutcomeNoPayableBlocks
		return res, nil
	}

	blocks := deltaViews / BlockSize
	if userBlocks := acct.RemainingCap(c) / c.RatePer1000; blocks > userBlocks {
		blocks = userBlocks
	}
	if budgetBlocks := c.RemainingBudget() / c.RatePer1000; blocks > budgetBlocks {
		blocks = budgetBlocks
	}
	deltaKz := blocks * c.RatePer1000
	if deltaKz <= 0 {
		res.Outcome = OutcomeCapped
		a.lifecycle.Apply(&res.Campaign)
		return res, nil
	}
	deltaViews = blocks * BlockSize

	s.PaidViews += deltaViews
	acct.PaidKz += deltaKz
	acct.TotalViewsPaid += deltaViews
	c.Spent += deltaKz
	a.lifecycle.Apply(&c)

	if acct.PaidKz == c.MaxPayoutPerUser && !acct.CapReachedNotified {
		acct.CapReachedNotified = true
		res.UserCapped = true
	}

	res.Outcome = OutcomePaid
	res.Campaign, res.Account, res.Submission = c, acct, s
	res.DeltaViews, res.DeltaKz = deltaViews, deltaKz
	return res, nil
}
