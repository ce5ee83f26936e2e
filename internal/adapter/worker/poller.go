package worker

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
	"viralizza/internal/metrics"
)

// passLockKey names the distributed lock shared by all poller replicas.
const passLockKey = "poll-pass"

// ErrPassInProgress is returned by RunOnce when another pass holds the
// in-process or the distributed lock.
var ErrPassInProgress = errors.New("poll pass already in progress")

// SubmissionLister yields the submissions due for sampling.
type SubmissionLister interface {
	ListPollable(ctx context.Context) ([]domain.Submission, error)
}

// SampleProcessor turns samples into payments and refreshes leaderboards.
// port.PayoutUseCase satisfies it.
type SampleProcessor interface {
	ProcessSample(ctx context.Context, submissionID int64, sample domain.ViewSample) (domain.Allocation, error)
	PublishLeaderboard(ctx context.Context, campaignID int64) error
}

// Config tunes a Poller. Zero values select the defaults.
type Config struct {
	Interval        time.Duration
	Concurrency     int
	LockTTL         time.Duration
	ProviderTimeout time.Duration
}

// PassReport summarises one pass.
type PassReport struct {
	StartedAt      time.Time
	Duration       time.Duration
	Submissions    int
	Outcomes       map[domain.Outcome]int
	ProviderErrors int
	Failures       int
	PaidKz         int64
	Republished    []int64
}

// Poller periodically samples every approved submission and feeds the
// readings to the payout engine.
type Poller struct {
	lister    SubmissionLister
	provider  port.ViewProvider
	processor SampleProcessor
	locker    port.Locker
	metrics   *metrics.Metrics
	cfg       Config
	logger    *slog.Logger

	running sync.Mutex
	wg      sync.WaitGroup
	done    chan struct{}
	stop    sync.Once
}

// NewPoller creates a poller. locker and m may be nil.
func NewPoller(
	lister SubmissionLister,
	provider port.ViewProvider,
	processor SampleProcessor,
	locker port.Locker,
	m *metrics.Metrics,
	cfg Config,
	logger *slog.Logger,
) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = cfg.Interval
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 30 * time.Second
	}
	return &Poller{
		lister:    lister,
		provider:  provider,
		processor: processor,
		locker:    locker,
		metrics:   m,
		cfg:       cfg,
		logger:    logger.With("component", "poller"),
		done:      make(chan struct{}),
	}
}

// Start runs a pass immediately and then once per interval until ctx is
// cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		p.loop(ctx)
	}()
	go func() {
		select {
		case <-p.done:
			cancel()
		case <-ctx.Done():
		}
	}()
	p.logger.Info("poller started",
		"interval", p.cfg.Interval,
		"concurrency", p.cfg.Concurrency,
	)
}

// Stop cancels a running pass and waits for the loop to exit.
func (p *Poller) Stop() {
	p.stop.Do(func() { close(p.done) })
	p.wg.Wait()
	p.logger.Info("poller stopped")
}

func (p *Poller) loop(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.runLogged(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runLogged(ctx)
		}
	}
}

func (p *Poller) runLogged(ctx context.Context) {
	report, err := p.RunOnce(ctx)
	switch {
	case errors.Is(err, ErrPassInProgress):
		p.logger.Info("poll pass skipped, another pass is running")
	case err != nil:
		p.logger.Error("poll pass failed", "error", err, "submissions", report.Submissions)
	default:
		p.logger.Info("poll pass finished",
			"submissions", report.Submissions,
			"paid", report.Outcomes[domain.OutcomePaid],
			"paid_kz", report.PaidKz,
			"provider_errors", report.ProviderErrors,
			"failures", report.Failures,
			"duration", report.Duration,
		)
	}
}

// RunOnce performs a single pass over all pollable submissions. Errors of
// individual submissions are logged and counted; the pass goes on. The
// returned error is set only when the pass could not run or was cancelled.
func (p *Poller) RunOnce(ctx context.Context) (PassReport, error) {
	report := PassReport{StartedAt: time.Now(), Outcomes: make(map[domain.Outcome]int)}

	if !p.running.TryLock() {
		p.metrics.ObservePass("skipped", 0)
		return report, ErrPassInProgress
	}
	defer p.running.Unlock()

	if p.locker != nil {
		lease, ok, err := p.locker.TryLock(ctx, passLockKey, p.cfg.LockTTL)
		switch {
		case err != nil:
			// the ledger row locks keep payments exact without it
			p.logger.Warn("distributed pass lock unavailable, running unlocked", "error", err)
		case !ok:
			p.metrics.ObservePass("skipped", 0)
			return report, ErrPassInProgress
		default:
			stopKeepAlive := p.keepAlive(ctx, lease)
			defer func() {
				stopKeepAlive()
				lease.Release()
			}()
		}
	}

	subs, err := p.lister.ListPollable(ctx)
	if err != nil {
		p.metrics.ObservePass("error", time.Since(report.StartedAt).Seconds())
		return report, err
	}

	var (
		mu      sync.Mutex
		changed = make(map[int64]bool)
	)
	record := func(r submissionResult) {
		mu.Lock()
		defer mu.Unlock()
		report.Submissions++
		switch {
		case r.providerErr:
			report.ProviderErrors++
		case r.failed:
			report.Failures++
		default:
			report.Outcomes[r.outcome]++
			report.PaidKz += r.paidKz
		}
		if r.changed {
			changed[r.campaignID] = true
		}
	}

	groups := groupByCampaign(subs)
	if p.cfg.Concurrency == 1 {
		for _, g := range groups {
			if err = p.processCampaign(ctx, g, record); err != nil {
				break
			}
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(p.cfg.Concurrency)
		for _, g := range groups {
			g := g
			eg.Go(func() error { return p.processCampaign(egCtx, g, record) })
		}
		err = eg.Wait()
	}

	ids := make([]int64, 0, len(changed))
	for id := range changed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		if pubErr := p.processor.PublishLeaderboard(ctx, id); pubErr != nil {
			p.logger.Warn("leaderboard publish failed", "campaign_id", id, "error", pubErr)
			continue
		}
		report.Republished = append(report.Republished, id)
	}

	report.Duration = time.Since(report.StartedAt)
	result := "ok"
	if err != nil {
		result = "cancelled"
	}
	p.metrics.ObservePass(result, report.Duration.Seconds())
	return report, err
}

// keepAlive extends lease every third of the lock ttl so a pass longer
// than the ttl keeps other replicas out. The returned func stops it.
func (p *Poller) keepAlive(ctx context.Context, lease port.Lease) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(max(p.cfg.LockTTL/3, time.Millisecond))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ok, err := lease.Extend(ctx, p.cfg.LockTTL)
				switch {
				case err != nil && ctx.Err() != nil:
					return
				case err != nil:
					p.logger.Warn("pass lock extension failed", "error", err)
				case !ok:
					p.logger.Warn("pass lock lost, another replica may start a pass")
					return
				}
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

type submissionResult struct {
	campaignID  int64
	outcome     domain.Outcome
	paidKz      int64
	providerErr bool
	failed      bool
	changed     bool // leaderboard inputs moved
}

// processCampaign samples the submissions of one campaign in order. It
// stops early only when ctx is cancelled.
func (p *Poller) processCampaign(ctx context.Context, subs []domain.Submission, record func(submissionResult)) error {
	for _, s := range subs {
		if err := ctx.Err(); err != nil {
			return err
		}
		record(p.processSubmission(ctx, s))
	}
	return nil
}

func (p *Poller) processSubmission(ctx context.Context, s domain.Submission) submissionResult {
	res := submissionResult{campaignID: s.CampaignID}
	log := p.logger.With("submission_id", s.ID, "campaign_id", s.CampaignID)

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.ProviderTimeout)
	views, err := p.provider.FetchViews(callCtx, s.Platform, s.URL)
	cancel()
	if err != nil {
		p.metrics.IncProviderErrors(string(s.Platform))
		log.Warn("view sample failed", "platform", s.Platform, "error", err)
		res.providerErr = true
		res.outcome = domain.OutcomeSkipped
		return res
	}

	alloc, err := p.processor.ProcessSample(ctx, s.ID, domain.SampleOf(views))
	if err != nil {
		if errors.Is(err, domain.ErrLedgerInconsistent) {
			p.metrics.IncQuarantined()
		} else {
			log.Error("allocation failed", "error", err)
		}
		res.failed = true
		return res
	}
	res.outcome = alloc.Outcome
	res.changed = leaderboardMoved(s, alloc)
	if alloc.Outcome == domain.OutcomePaid {
		res.paidKz = alloc.DeltaKz
	}
	p.metrics.ObserveAllocation(string(alloc.Outcome), res.paidKz)
	return res
}

// leaderboardMoved reports whether an allocation changed anything the
// campaign leaderboard shows: payouts, live views or the campaign status.
func leaderboardMoved(before domain.Submission, alloc domain.Allocation) bool {
	switch alloc.Outcome {
	case domain.OutcomePaid:
		return true
	case domain.OutcomeNoPayableBlocks, domain.OutcomeCapped:
		return alloc.StatusChanged() || alloc.Submission.ViewsCurrent != before.ViewsCurrent
	default:
		return false
	}
}

// groupByCampaign splits submissions into per-campaign runs, keeping the
// order the lister returned.
func groupByCampaign(subs []domain.Submission) [][]domain.Submission {
	var (
		groups [][]domain.Submission
		index  = make(map[int64]int)
	)
	for _, s := range subs {
		i, ok := index[s.CampaignID]
		if !ok {
			i = len(groups)
			index[s.CampaignID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}
