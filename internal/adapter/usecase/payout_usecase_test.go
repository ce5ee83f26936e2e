package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"viralizza/internal/adapter/memory"
	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
	"viralizza/internal/core/port/mocks"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	tiktokURL    = "https://www.tiktok.com/@creator/video/7301234567890123456"
	instagramURL = "https://www.instagram.com/reel/C1a2b3c4d5"
)

type fixture struct {
	uc        *PayoutUseCase
	ledger    *memory.Ledger
	provider  *mocks.MockViewProvider
	notifier  *mocks.MockNotifier
	publisher *mocks.MockLeaderboardPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		ledger:    memory.NewLedger(),
		provider:  mocks.NewMockViewProvider(t),
		notifier:  mocks.NewMockNotifier(t),
		publisher: mocks.NewMockLeaderboardPublisher(t),
	}
	f.uc = NewPayoutUseCase(f.ledger, f.provider, f.notifier, f.publisher, Options{Logger: testLogger})
	return f
}

// scenarioCampaign creates the reference campaign: 800 per 1000 views,
// budget 167,000 and 50,000 per user.
func scenarioCampaign(t *testing.T, uc *PayoutUseCase) *domain.Campaign {
	t.Helper()
	c, err := uc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Name:             "Summer Drop",
		RatePer1000:      800,
		Budget:           167_000,
		MaxPayoutPerUser: 50_000,
		MaxPostsPerUser:  2,
		AllowedPlatforms: []domain.Platform{domain.PlatformTikTok},
	})
	require.NoError(t, err)
	return c
}

func propose(t *testing.T, uc *PayoutUseCase, campaignID int64, user, url string) *domain.Submission {
	t.Helper()
	s, err := uc.ProposeSubmission(context.Background(), port.ProposeReq{CampaignID: campaignID, UserID: user, URL: url})
	require.NoError(t, err)
	return s
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)

	c := scenarioCampaign(t, f.uc)
	assert.Equal(t, "summer-drop", c.Slug)
	assert.Equal(t, domain.CampaignActive, c.Status)
	assert.NotZero(t, c.ID)

	_, err := f.uc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Name: "Summer Drop", RatePer1000: 800, Budget: 1000, MaxPayoutPerUser: 800,
		AllowedPlatforms: []domain.Platform{domain.PlatformYouTube},
	})
	assert.ErrorIs(t, err, port.ErrSlugTaken)

	invalid := []port.CreateCampaignReq{
		{Name: "", RatePer1000: 800, Budget: 1000, MaxPayoutPerUser: 800, AllowedPlatforms: []domain.Platform{domain.PlatformTikTok}},
		{Name: "a", RatePer1000: 0, Budget: 1000, MaxPayoutPerUser: 800, AllowedPlatforms: []domain.Platform{domain.PlatformTikTok}},
		{Name: "b", RatePer1000: 800, Budget: 500, MaxPayoutPerUser: 800, AllowedPlatforms: []domain.Platform{domain.PlatformTikTok}},
		{Name: "c", RatePer1000: 800, Budget: 1000, MaxPayoutPerUser: 100, AllowedPlatforms: []domain.Platform{domain.PlatformTikTok}},
		{Name: "d", RatePer1000: 800, Budget: 1000, MaxPayoutPerUser: 800},
		{Name: "e", RatePer1000: 800, Budget: 1000, MaxPayoutPerUser: 800, AllowedPlatforms: []domain.Platform{"myspace"}},
		{Name: "f", Slug: "Not A Slug", RatePer1000: 800, Budget: 1000, MaxPayoutPerUser: 800, AllowedPlatforms: []domain.Platform{domain.PlatformTikTok}},
	}
	for i, req := range invalid {
		_, err = f.uc.CreateCampaign(context.Background(), req)
		assert.ErrorIs(t, err, port.ErrInvalidCampaign, "case %d", i)
	}
}

func TestProposeSubmission_Eligibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	propose(t, f.uc, c.ID, "u1", tiktokURL)

	capped := domain.Account{CampaignID: c.ID, UserID: "capped", PaidKz: 49_600}
	f.ledger.PutAccount(capped)

	tests := []struct {
		name string
		req  port.ProposeReq
		want error
	}{
		{"duplicate url", port.ProposeReq{CampaignID: c.ID, UserID: "u2", URL: tiktokURL + "?lang=en"}, port.ErrDuplicateURL},
		{"platform not allowed", port.ProposeReq{CampaignID: c.ID, UserID: "u2", URL: instagramURL}, port.ErrPlatformNotAllowed},
		{"platform mismatch", port.ProposeReq{CampaignID: c.ID, UserID: "u2", Platform: "youtube", URL: tiktokURL}, port.ErrInvalidURL},
		{"profile url", port.ProposeReq{CampaignID: c.ID, UserID: "u2", URL: "https://www.tiktok.com/@creator"}, port.ErrInvalidURL},
		{"unknown campaign", port.ProposeReq{CampaignID: 404, UserID: "u2", URL: tiktokURL + "9"}, port.ErrCampaignNotFound},
		{"user cap", port.ProposeReq{CampaignID: c.ID, UserID: "capped", URL: tiktokURL + "8"}, port.ErrUserCapReached},
		{"empty user", port.ProposeReq{CampaignID: c.ID, UserID: " ", URL: tiktokURL + "7"}, port.ErrUserIDRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.ProposeSubmission(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("post limit", func(t *testing.T) {
		propose(t, f.uc, c.ID, "u1", tiktokURL+"1")
		_, err := f.uc.ProposeSubmission(ctx, port.ProposeReq{CampaignID: c.ID, UserID: "u1", URL: tiktokURL + "2"})
		assert.ErrorIs(t, err, port.ErrPostLimitReached)
	})

	t.Run("rejected posts free a slot", func(t *testing.T) {
		s := propose(t, f.uc, c.ID, "u3", tiktokURL+"3")
		propose(t, f.uc, c.ID, "u3", tiktokURL+"4")
		_, err := f.uc.Reject(ctx, s.ID)
		require.NoError(t, err)
		propose(t, f.uc, c.ID, "u3", tiktokURL+"5")
	})

	t.Run("ended campaign", func(t *testing.T) {
		f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
		f.publisher.EXPECT().PublishLeaderboard(mock.Anything, mock.Anything).Return(nil).Once()
		_, err := f.uc.EndCampaign(ctx, c.ID)
		require.NoError(t, err)
		_, err = f.uc.ProposeSubmission(ctx, port.ProposeReq{CampaignID: c.ID, UserID: "u4", URL: tiktokURL + "6"})
		assert.ErrorIs(t, err, port.ErrCampaignClosed)
	})
}

func TestProposeSubmission_RejectsSpellingsOfSamePost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, err := f.uc.CreateCampaign(ctx, port.CreateCampaignReq{
		Name:             "Any Platform",
		RatePer1000:      800,
		Budget:           167_000,
		MaxPayoutPerUser: 50_000,
		AllowedPlatforms: []domain.Platform{domain.PlatformTikTok, domain.PlatformYouTube, domain.PlatformInstagram},
	})
	require.NoError(t, err)

	groups := [][]string{
		{
			"https://www.tiktok.com/@a/video/1",
			"https://tiktok.com/@a/video/1",
			"http://www.tiktok.com/@a/video/1",
			"https://m.tiktok.com/@a/video/1/?is_from_webapp=1",
		},
		{
			"https://www.youtube.com/watch?v=abc",
			"https://youtube.com/watch?v=abc",
			"https://youtu.be/abc",
			"https://www.youtube.com/shorts/abc",
			"https://m.youtube.com/watch?v=abc&t=42s",
		},
		{
			"https://www.instagram.com/reel/Cxyz/",
			"https://instagram.com/p/Cxyz",
		},
	}
	for _, urls := range groups {
		first := propose(t, f.uc, c.ID, "u1", urls[0])
		for _, u := range urls[1:] {
			_, err := f.uc.ProposeSubmission(ctx, port.ProposeReq{CampaignID: c.ID, UserID: "u2", URL: u})
			assert.ErrorIs(t, err, port.ErrDuplicateURL, u)
		}
		stored, err := f.ledger.GetSubmission(ctx, first.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.PostID)
	}

	// the same id on another platform is a different post
	propose(t, f.uc, c.ID, "u3", "https://youtu.be/1")
}

func TestProposeSubmission_ClosingThresholdAppliesOnIntake(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)

	// spent 85% while stored as active, as left by a run with a higher threshold
	c.Spent = 141_950
	f.ledger.PutCampaign(*c)

	_, err := f.uc.ProposeSubmission(ctx, port.ProposeReq{CampaignID: c.ID, UserID: "u1", URL: tiktokURL})
	require.NoError(t, err)

	lowered := NewPayoutUseCase(f.ledger, nil, nil, nil, Options{ClosingThreshold: 0.8, Logger: testLogger})
	_, err = lowered.ProposeSubmission(ctx, port.ProposeReq{CampaignID: c.ID, UserID: "u2", URL: tiktokURL + "1"})
	assert.ErrorIs(t, err, port.ErrCampaignClosed)
}

// Scenarios A and B: first sample pays whole blocks, a lower reading is
// ignored.
func TestApprove_PaysInitialSample(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	s := propose(t, f.uc, c.ID, "u1", tiktokURL)

	f.provider.EXPECT().FetchViews(mock.Anything, domain.PlatformTikTok, tiktokURL).Return(int64(2400), nil).Once()
	f.publisher.EXPECT().
		PublishLeaderboard(mock.Anything, mock.MatchedBy(func(lb domain.Leaderboard) bool {
			return lb.Spent == 1600 && len(lb.Entries) == 1 && lb.Entries[0].UserID == "u1"
		})).
		Return(nil).Once()

	got, err := f.uc.Approve(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, got.Status)
	assert.EqualValues(t, 2400, got.ViewsCurrent)
	assert.EqualValues(t, 2000, got.PaidViews)

	acct, err := f.ledger.GetAccount(ctx, c.ID, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1600, acct.PaidKz)

	alloc, err := f.uc.ProcessSample(ctx, s.ID, domain.SampleOf(1900))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoPayableBlocks, alloc.Outcome)

	stored, err := f.ledger.GetSubmission(ctx, s.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2400, stored.ViewsCurrent)
	assert.EqualValues(t, 2000, stored.PaidViews)

	_, err = f.uc.Approve(ctx, s.ID)
	assert.ErrorIs(t, err, port.ErrInvalidTransition)
}

func TestApprove_ProviderFailureKeepsApproval(t *testing.T) {
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	s := propose(t, f.uc, c.ID, "u1", tiktokURL)

	f.provider.EXPECT().FetchViews(mock.Anything, mock.Anything, mock.Anything).Return(int64(0), port.ErrViewsUnavailable).Once()

	got, err := f.uc.Approve(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, got.Status)
	assert.Zero(t, got.PaidViews)
}

// Scenario D: the payment that crosses 95% closes the campaign in the same
// step; approved posts keep earning.
func TestProcessSample_ClosesCampaign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	s := propose(t, f.uc, c.ID, "u1", tiktokURL)

	stored, _ := f.ledger.GetCampaign(ctx, c.ID)
	stored.Spent = 158_400
	f.ledger.PutCampaign(*stored)

	f.provider.EXPECT().FetchViews(mock.Anything, mock.Anything, mock.Anything).Return(int64(0), port.ErrViewsUnavailable).Once()
	_, err := f.uc.Approve(ctx, s.ID)
	require.NoError(t, err)

	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventCampaignClosing && e.CampaignID == c.ID && e.ID != ""
		})).
		Return(nil).Once()

	alloc, err := f.uc.ProcessSample(ctx, s.ID, domain.SampleOf(2000))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePaid, alloc.Outcome)
	assert.EqualValues(t, 160_000, alloc.Campaign.Spent)
	assert.Equal(t, domain.CampaignClosing, alloc.Campaign.Status)

	_, err = f.uc.ProposeSubmission(ctx, port.ProposeReq{CampaignID: c.ID, UserID: "u2", URL: tiktokURL + "1"})
	assert.ErrorIs(t, err, port.ErrCampaignClosed)

	alloc, err = f.uc.ProcessSample(ctx, s.ID, domain.SampleOf(4000))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePaid, alloc.Outcome)
	assert.EqualValues(t, 161_600, alloc.Campaign.Spent)
	assert.Equal(t, domain.CampaignClosing, alloc.Campaign.Status)
}

func TestProcessSample_UserCappedNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, err := f.uc.CreateCampaign(ctx, port.CreateCampaignReq{
		Name: "Cap", RatePer1000: 1000, Budget: 100_000, MaxPayoutPerUser: 3000,
		AllowedPlatforms: []domain.Platform{domain.PlatformTikTok},
	})
	require.NoError(t, err)
	s := propose(t, f.uc, c.ID, "u1", tiktokURL)
	f.provider.EXPECT().FetchViews(mock.Anything, mock.Anything, mock.Anything).Return(int64(0), port.ErrViewsUnavailable).Once()
	_, err = f.uc.Approve(ctx, s.ID)
	require.NoError(t, err)

	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventUserCapped && e.UserID == "u1" && e.Data["paid_kz"] == "3000"
		})).
		Return(nil).Once()

	alloc, err := f.uc.ProcessSample(ctx, s.ID, domain.SampleOf(5500))
	require.NoError(t, err)
	assert.True(t, alloc.UserCapped)
	assert.EqualValues(t, 3000, alloc.DeltaKz)

	alloc, err = f.uc.ProcessSample(ctx, s.ID, domain.SampleOf(9000))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCapped, alloc.Outcome)
	assert.False(t, alloc.UserCapped)
}

func TestProcessSample_UnavailableSampleTouchesNothing(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	uc := NewPayoutUseCase(repo, nil, nil, nil, Options{Logger: testLogger})

	alloc, err := uc.ProcessSample(context.Background(), 1, domain.ViewSample{})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, alloc.Outcome)
}

func TestProcessSample_QuarantinesInconsistentLedger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	f.ledger.PutSubmission(domain.Submission{
		ID: 99, CampaignID: c.ID, UserID: "u1", URL: tiktokURL, Platform: domain.PlatformTikTok,
		Status: domain.SubmissionApproved, ViewsCurrent: 3000, PaidViews: 1500,
	})

	_, err := f.uc.ProcessSample(ctx, 99, domain.SampleOf(5000))
	require.ErrorIs(t, err, domain.ErrLedgerInconsistent)

	s, err := f.ledger.GetSubmission(ctx, 99)
	require.NoError(t, err)
	assert.True(t, s.Quarantined)
	assert.EqualValues(t, 1500, s.PaidViews)

	pollable, err := f.ledger.ListPollable(ctx)
	require.NoError(t, err)
	assert.Empty(t, pollable)

	stored, _ := f.ledger.GetCampaign(ctx, c.ID)
	assert.Zero(t, stored.Spent)
}

// Scenario E: leaving a campaign clears the user's record so the same post
// can be entered again.
func TestResetUser_AllowsResubmission(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	s := propose(t, f.uc, c.ID, "u1", tiktokURL)

	f.provider.EXPECT().FetchViews(mock.Anything, mock.Anything, mock.Anything).Return(int64(2400), nil).Once()
	f.publisher.EXPECT().PublishLeaderboard(mock.Anything, mock.Anything).Return(nil).Twice()
	_, err := f.uc.Approve(ctx, s.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.ResetUser(ctx, c.ID, "u1"))
	require.NoError(t, f.uc.ResetUser(ctx, c.ID, "u1"))

	acct, err := f.ledger.GetAccount(ctx, c.ID, "u1")
	require.NoError(t, err)
	assert.Nil(t, acct)

	again := propose(t, f.uc, c.ID, "u1", tiktokURL)
	assert.NotEqual(t, s.ID, again.ID)
	assert.Equal(t, domain.SubmissionPending, again.Status)

	// paid amounts stay in the campaign's spend
	stored, _ := f.ledger.GetCampaign(ctx, c.ID)
	assert.EqualValues(t, 1600, stored.Spent)

	assert.ErrorIs(t, f.uc.ResetUser(ctx, 404, "u1"), port.ErrCampaignNotFound)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)
	s := propose(t, f.uc, c.ID, "u1", tiktokURL)

	_, err := f.uc.Remove(ctx, s.ID)
	assert.ErrorIs(t, err, port.ErrInvalidTransition)

	f.provider.EXPECT().FetchViews(mock.Anything, mock.Anything, mock.Anything).Return(int64(0), port.ErrViewsUnavailable).Once()
	_, err = f.uc.Approve(ctx, s.ID)
	require.NoError(t, err)

	f.publisher.EXPECT().PublishLeaderboard(mock.Anything, mock.Anything).Return(nil).Once()
	removed, err := f.uc.Remove(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRemoved, removed.Status)

	alloc, err := f.uc.ProcessSample(ctx, s.ID, domain.SampleOf(5000))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIneligible, alloc.Outcome)

	_, err = f.uc.Reject(ctx, 404)
	assert.ErrorIs(t, err, port.ErrSubmissionNotFound)
}

func TestEndCampaign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)

	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventCampaignEnded && e.Data["reason"] == "manual"
		})).
		Return(nil).Once()
	f.publisher.EXPECT().PublishLeaderboard(mock.Anything, mock.Anything).Return(nil).Once()

	ended, err := f.uc.EndCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignEnded, ended.Status)

	again, err := f.uc.EndCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignEnded, again.Status)

	_, err = f.uc.EndCampaign(ctx, 404)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestNotifierFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := scenarioCampaign(t, f.uc)

	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	f.publisher.EXPECT().PublishLeaderboard(mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	_, err := f.uc.EndCampaign(ctx, c.ID)
	assert.NoError(t, err)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	boom := errors.New("connection reset")
	repo.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(nil, boom).Once()

	uc := NewPayoutUseCase(repo, nil, nil, nil, Options{Logger: testLogger})
	_, err := uc.ProposeSubmission(context.Background(), port.ProposeReq{CampaignID: 7, UserID: "u1", URL: tiktokURL})
	assert.ErrorIs(t, err, boom)
}

// TestConcurrentAllocation drives many submissions of one campaign from
// parallel goroutines and checks that the budget is never overspent.
func TestConcurrentAllocation(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	notifier := mocks.NewMockNotifier(t)
	uc := NewPayoutUseCase(ledger, nil, notifier, nil, Options{Logger: testLogger})

	c, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{
		Name: "Race", RatePer1000: 1000, Budget: 50_000, MaxPayoutPerUser: 20_000, MaxPostsPerUser: 3,
		AllowedPlatforms: []domain.Platform{domain.PlatformTikTok},
	})
	require.NoError(t, err)

	var ids []int64
	for u := 0; u < 10; u++ {
		for p := 0; p < 3; p++ {
			s := propose(t, uc, c.ID, fmt.Sprintf("user-%d", u), fmt.Sprintf("%s%d%d", tiktokURL, u, p))
			_, err = uc.Approve(ctx, s.ID)
			require.NoError(t, err)
			ids = append(ids, s.ID)
		}
	}

	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.Event) bool { return e.Type == domain.EventCampaignClosing })).
		Return(nil).Once()
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.Event) bool { return e.Type == domain.EventCampaignEnded })).
		Return(nil).Once()
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(e domain.Event) bool { return e.Type == domain.EventUserCapped })).
		Return(nil).Maybe()

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for round := int64(1); round <= 20; round++ {
				_, err := uc.ProcessSample(ctx, id, domain.SampleOf(round*700))
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	stored, err := ledger.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 50_000, stored.Spent)
	assert.Equal(t, domain.CampaignEnded, stored.Status)

	standings, err := ledger.ListStandings(ctx, c.ID)
	require.NoError(t, err)
	var total int64
	for _, st := range standings {
		assert.LessOrEqual(t, st.Account.PaidKz, c.MaxPayoutPerUser)
		total += st.Account.PaidKz
	}
	assert.Equal(t, stored.Spent, total)
}
