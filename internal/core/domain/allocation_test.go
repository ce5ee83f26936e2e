package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCampaign() Campaign {
	return Campaign{
		ID:               1,
		RatePer1000:      800,
		Budget:           167_000,
		MaxPayoutPerUser: 50_000,
		Status:           CampaignActive,
	}
}

func approved(id int64) Submission {
	return Submission{ID: id, CampaignID: 1, UserID: "u1", Status: SubmissionApproved}
}

func TestAllocate_PaysWholeBlocks(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))

	res, err := a.Allocate(scenarioCampaign(), Account{}, approved(1), SampleOf(2400))
	require.NoError(t, err)

	assert.Equal(t, OutcomePaid, res.Outcome)
	assert.EqualValues(t, 1600, res.DeltaKz)
	assert.EqualValues(t, 2000, res.DeltaViews)
	assert.EqualValues(t, 2000, res.Submission.PaidViews)
	assert.EqualValues(t, 2400, res.Submission.ViewsCurrent)
	assert.EqualValues(t, 1600, res.Account.PaidKz)
	assert.EqualValues(t, 2000, res.Account.TotalViewsPaid)
	assert.Equal(t, "u1", res.Account.UserID)
	assert.EqualValues(t, 1600, res.Campaign.Spent)
	assert.Equal(t, CampaignActive, res.Campaign.Status)
	assert.False(t, res.StatusChanged())
}

func TestAllocate_DropDoesNotLowerViews(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	c := scenarioCampaign()
	c.Spent = 1600
	s := approved(1)
	s.ViewsCurrent, s.PaidViews = 2400, 2000

	res, err := a.Allocate(c, Account{PaidKz: 1600, TotalViewsPaid: 2000}, s, SampleOf(1900))
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoPayableBlocks, res.Outcome)
	assert.EqualValues(t, 2400, res.Submission.ViewsCurrent)
	assert.EqualValues(t, 2000, res.Submission.PaidViews)
	assert.Zero(t, res.DeltaKz)
}

func TestAllocate_CustomFloorFollowsSample(t *testing.T) {
	latest := func(_, sampled int64) int64 { return sampled }
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold)).WithFloor(latest)
	s := approved(1)
	s.ViewsCurrent, s.PaidViews = 2400, 2000

	// the latest reading replaces the higher stored count
	res, err := a.Allocate(scenarioCampaign(), Account{PaidKz: 1600}, s, SampleOf(2100))
	require.NoError(t, err)
	assert.EqualValues(t, 2100, res.Submission.ViewsCurrent)
	assert.Equal(t, OutcomeNoPayableBlocks, res.Outcome)
}

func TestAllocate_PartialBlockAtUserCapIsNotPaid(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	acct := Account{CampaignID: 1, UserID: "u1", PaidKz: 49_600, TotalViewsPaid: 62_000}

	res, err := a.Allocate(scenarioCampaign(), acct, approved(2), SampleOf(3000))
	require.NoError(t, err)

	assert.Equal(t, OutcomeCapped, res.Outcome)
	assert.Zero(t, res.DeltaKz)
	assert.EqualValues(t, 49_600, res.Account.PaidKz)
	assert.EqualValues(t, 3000, res.Submission.ViewsCurrent)
	assert.Zero(t, res.Submission.PaidViews)
	assert.False(t, res.UserCapped)
}

func TestAllocate_UserCapClampsBeforeBudget(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	c := scenarioCampaign()
	acct := Account{PaidKz: 48_000}

	// 5 blocks owed, 2 fit under the user cap, budget has plenty
	res, err := a.Allocate(c, acct, approved(1), SampleOf(5000))
	require.NoError(t, err)

	assert.Equal(t, OutcomePaid, res.Outcome)
	assert.EqualValues(t, 1600, res.DeltaKz)
	assert.EqualValues(t, 2000, res.Submission.PaidViews)
	assert.EqualValues(t, 49_600, res.Account.PaidKz)
}

func TestAllocate_BudgetClampsAndEndsCampaign(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	c := scenarioCampaign()
	c.Spent = 165_000
	c.Status = CampaignClosing

	res, err := a.Allocate(c, Account{}, approved(1), SampleOf(10_000))
	require.NoError(t, err)

	// remaining 2000 funds two blocks, the 400 left cannot fund a third
	assert.Equal(t, OutcomePaid, res.Outcome)
	assert.EqualValues(t, 1600, res.DeltaKz)
	assert.EqualValues(t, 166_600, res.Campaign.Spent)
	assert.Equal(t, CampaignEnded, res.Campaign.Status)
	assert.Equal(t, CampaignClosing, res.PreviousStatus)
	assert.True(t, res.StatusChanged())
}

func TestAllocate_ClosingFlipsWithPayment(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	c := scenarioCampaign()
	c.Spent = 158_400

	res, err := a.Allocate(c, Account{}, approved(1), SampleOf(2000))
	require.NoError(t, err)

	assert.EqualValues(t, 160_000, res.Campaign.Spent)
	assert.Equal(t, CampaignClosing, res.Campaign.Status)
	assert.True(t, res.StatusChanged())
	assert.False(t, res.Campaign.AcceptsSubmissions())
	assert.True(t, res.Campaign.Status.Pollable())
}

func TestAllocate_UserCappedFiresOnce(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	c := scenarioCampaign()
	c.MaxPayoutPerUser = 1600

	res, err := a.Allocate(c, Account{}, approved(1), SampleOf(2000))
	require.NoError(t, err)
	require.Equal(t, OutcomePaid, res.Outcome)
	assert.True(t, res.UserCapped)
	assert.True(t, res.Account.CapReachedNotified)

	second, err := a.Allocate(res.Campaign, res.Account, approved(2), SampleOf(9000))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCapped, second.Outcome)
	assert.False(t, second.UserCapped)
}

func TestAllocate_Skipped(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	s := approved(1)
	s.ViewsCurrent = 500

	res, err := a.Allocate(scenarioCampaign(), Account{}, s, ViewSample{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, res.Outcome)
	assert.EqualValues(t, 500, res.Submission.ViewsCurrent)

	res, err = a.Allocate(scenarioCampaign(), Account{}, s, SampleOf(-1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, res.Outcome)
}

func TestAllocate_Ineligible(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	ended := scenarioCampaign()
	ended.Status = CampaignEnded
	pending := approved(1)
	pending.Status = SubmissionPending
	quarantined := approved(1)
	quarantined.Quarantined = true

	tests := []struct {
		name string
		c    Campaign
		s    Submission
	}{
		{"ended campaign", ended, approved(1)},
		{"pending submission", scenarioCampaign(), pending},
		{"quarantined submission", scenarioCampaign(), quarantined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := a.Allocate(tt.c, Account{}, tt.s, SampleOf(5000))
			require.NoError(t, err)
			assert.Equal(t, OutcomeIneligible, res.Outcome)
			assert.Zero(t, res.DeltaKz)
		})
	}
}

func TestAllocate_LedgerInconsistent(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))

	notBlock := approved(1)
	notBlock.ViewsCurrent, notBlock.PaidViews = 3000, 1500
	overPaid := approved(1)
	overPaid.ViewsCurrent, overPaid.PaidViews = 1000, 2000

	_, err := a.Allocate(scenarioCampaign(), Account{}, notBlock, SampleOf(4000))
	assert.ErrorIs(t, err, ErrLedgerInconsistent)
	_, err = a.Allocate(scenarioCampaign(), Account{}, overPaid, SampleOf(4000))
	assert.ErrorIs(t, err, ErrLedgerInconsistent)
	_, err = a.Allocate(scenarioCampaign(), Account{PaidKz: 60_000}, approved(1), SampleOf(4000))
	assert.ErrorIs(t, err, ErrLedgerInconsistent)
}

func TestAllocate_Idempotent(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))

	first, err := a.Allocate(scenarioCampaign(), Account{}, approved(1), SampleOf(7300))
	require.NoError(t, err)
	require.Equal(t, OutcomePaid, first.Outcome)

	second, err := a.Allocate(first.Campaign, first.Account, first.Submission, SampleOf(7300))
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoPayableBlocks, second.Outcome)
	assert.Equal(t, first.Campaign.Spent, second.Campaign.Spent)
}

// TestAllocate_InvariantsHold feeds random samples for several users into
// one campaign and checks the ledger bounds after every step.
func TestAllocate_InvariantsHold(t *testing.T) {
	a := NewAllocator(NewLifecycle(DefaultClosingThreshold))
	r := rand.New(rand.NewSource(42))
	c := scenarioCampaign()
	accounts := map[string]Account{}
	subs := make([]Submission, 12)
	for i := range subs {
		subs[i] = Submission{ID: int64(i + 1), CampaignID: 1, UserID: string(rune('a' + i%4)), Status: SubmissionApproved}
	}

	for step := 0; step < 2000; step++ {
		i := r.Intn(len(subs))
		s := subs[i]
		prevSpent := c.Spent
		res, err := a.Allocate(c, accounts[s.UserID], s, SampleOf(s.ViewsCurrent+int64(r.Intn(4000))-500))
		require.NoError(t, err)
		if res.Outcome == OutcomeIneligible {
			require.Equal(t, CampaignEnded, c.Status)
			continue
		}
		c, subs[i] = res.Campaign, res.Submission
		if res.Outcome == OutcomePaid {
			accounts[s.UserID] = res.Account
		}

		sub := subs[i]
		require.GreaterOrEqual(t, sub.PaidViews, int64(0))
		require.LessOrEqual(t, sub.PaidViews, sub.ViewsCurrent)
		require.Zero(t, sub.PaidViews%BlockSize)
		require.LessOrEqual(t, accounts[s.UserID].PaidKz, c.MaxPayoutPerUser)
		require.LessOrEqual(t, c.Spent, c.Budget)
		require.GreaterOrEqual(t, c.Spent, prevSpent)
	}
	var total int64
	for _, acct := range accounts {
		total += acct.PaidKz
	}
	assert.Equal(t, c.Spent, total)
}
