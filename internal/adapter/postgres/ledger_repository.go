package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

// maxTxAttempts bounds retries of serializable transactions that fail with
// a serialization error.
const maxTxAttempts = 3

const campaignColumns = `id, name, slug, rate_per_1000, budget, max_payout_per_user, max_posts_per_user,
    allowed_platforms, spent, status, created_at, updated_at`

const submissionColumns = `id, campaign_id, user_id, url, platform, post_id, status, views_current, paid_views,
    quarantined, created_at, approved_at, updated_at`

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Every write that touches campaign counters locks the
// campaign row first.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CreateCampaign inserts a campaign and fills its id and timestamps.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (name, slug, rate_per_1000, budget, max_payout_per_user, max_posts_per_user, allowed_platforms, spent, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id, created_at, updated_at`,
		c.Name, c.Slug, c.RatePer1000, c.Budget, c.MaxPayoutPerUser, c.MaxPostsPerUser,
		platformsToText(c.AllowedPlatforms), c.Spent, string(c.Status),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return port.ErrSlugTaken
	}
	return err
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (r *LedgerRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// EndCampaign moves a campaign to ended under its row lock.
func (r *LedgerRepository) EndCampaign(ctx context.Context, id int64) (*domain.Campaign, bool, error) {
	var (
		out     *domain.Campaign
		changed bool
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		out, changed = nil, false
		c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if c.Status != domain.CampaignEnded {
			c.Status = domain.CampaignEnded
			c.UpdatedAt = time.Now().UTC()
			if _, err = tx.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = $3 WHERE id = $1`, id, string(c.Status), c.UpdatedAt); err != nil {
				return err
			}
			changed = true
		}
		out = &c
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

// CreateSubmission inserts a pending submission only while the campaign
// is active. The unique (campaign_id, url) and (campaign_id, platform,
// post_id) indexes reject duplicates.
func (r *LedgerRepository) CreateSubmission(ctx context.Context, s *domain.Submission) error {
	s.Status = domain.SubmissionPending
	err := r.pool.QueryRow(ctx, `INSERT INTO submissions (campaign_id, user_id, url, platform, post_id, status)
SELECT $1, $2, $3, $4, $5, $6
WHERE EXISTS (SELECT 1 FROM campaigns WHERE id = $1 AND status = 'active')
RETURNING id, created_at, updated_at`,
		s.CampaignID, s.UserID, s.URL, string(s.Platform), s.PostID, string(s.Status),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return port.ErrDuplicateURL
	case errors.Is(err, pgx.ErrNoRows):
		c, getErr := r.GetCampaign(ctx, s.CampaignID)
		if getErr != nil {
			return getErr
		}
		if c == nil {
			return port.ErrCampaignNotFound
		}
		return port.ErrCampaignClosed
	default:
		return err
	}
}

// GetSubmission returns a submission by id.
func (r *LedgerRepository) GetSubmission(ctx context.Context, id int64) (*domain.Submission, error) {
	s, err := scanSubmission(r.pool.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CountUserSubmissions counts pending and approved submissions.
func (r *LedgerRepository) CountUserSubmissions(ctx context.Context, campaignID int64, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM submissions
WHERE campaign_id = $1 AND user_id = $2 AND status IN ('pending', 'approved')`, campaignID, userID).Scan(&n)
	return n, err
}

// TransitionSubmission performs a compare-and-set on the submission status.
func (r *LedgerRepository) TransitionSubmission(ctx context.Context, id int64, from, to domain.SubmissionStatus) (*domain.Submission, error) {
	if !from.CanTransition(to) {
		return nil, port.ErrInvalidTransition
	}
	s, err := scanSubmission(r.pool.QueryRow(ctx, `UPDATE submissions
SET status = $3,
    approved_at = CASE WHEN $3 = 'approved' THEN now() ELSE approved_at END,
    updated_at = now()
WHERE id = $1 AND status = $2
RETURNING `+submissionColumns, id, string(from), string(to)))
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.GetSubmission(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, port.ErrSubmissionNotFound
		}
		return nil, port.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListPollable returns the submissions the poller must sample.
func (r *LedgerRepository) ListPollable(ctx context.Context) ([]domain.Submission, error) {
	rows, err := r.pool.Query(ctx, `SELECT s.id, s.campaign_id, s.user_id, s.url, s.platform, s.post_id, s.status,
    s.views_current, s.paid_views, s.quarantined, s.created_at, s.approved_at, s.updated_at
FROM submissions s
JOIN campaigns c ON c.id = s.campaign_id
WHERE s.status = 'approved'
  AND NOT s.quarantined
  AND c.status IN ('active', 'closing')
ORDER BY s.campaign_id, s.id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Submission, error) {
		return scanSubmission(row)
	})
}

// GetAccount returns the user's account in a campaign.
func (r *LedgerRepository) GetAccount(ctx context.Context, campaignID int64, userID string) (*domain.Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx, `SELECT campaign_id, user_id, paid_kz, total_views_paid, cap_reached_notified
FROM campaign_user_accounts WHERE campaign_id = $1 AND user_id = $2`, campaignID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ApplyAllocation locks the campaign row, reloads the submission and the
// account, runs allocate and persists the result in one serializable
// transaction. Submission, account and campaign counters are never
// observable out of step.
func (r *LedgerRepository) ApplyAllocation(ctx context.Context, submissionID int64, sample domain.ViewSample, allocate port.AllocateFunc) (domain.Allocation, error) {
	var (
		alloc        domain.Allocation
		inconsistent error
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		inconsistent = nil
		var campaignID int64
		err := tx.QueryRow(ctx, `SELECT campaign_id FROM submissions WHERE id = $1`, submissionID).Scan(&campaignID)
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrSubmissionNotFound
		}
		if err != nil {
			return err
		}
		// lock campaign
		c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID))
		if err != nil {
			return err
		}
		s, err := scanSubmission(tx.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1 FOR UPDATE`, submissionID))
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrSubmissionNotFound
		}
		if err != nil {
			return err
		}
		acct, err := scanAccount(tx.QueryRow(ctx, `SELECT campaign_id, user_id, paid_kz, total_views_paid, cap_reached_notified
FROM campaign_user_accounts WHERE campaign_id = $1 AND user_id = $2 FOR UPDATE`, s.CampaignID, s.UserID))
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		alloc, err = allocate(c, acct, s, sample)
		if errors.Is(err, domain.ErrLedgerInconsistent) {
			inconsistent = err
			_, err = tx.Exec(ctx, `UPDATE submissions SET quarantined = true, updated_at = now() WHERE id = $1`, s.ID)
			return err
		}
		if err != nil {
			return err
		}
		if alloc.Outcome == domain.OutcomeSkipped || alloc.Outcome == domain.OutcomeIneligible {
			return nil
		}

		now := time.Now().UTC()
		if alloc.Submission.ViewsCurrent != s.ViewsCurrent || alloc.Submission.PaidViews != s.PaidViews {
			alloc.Submission.UpdatedAt = now
			if _, err = tx.Exec(ctx, `UPDATE submissions SET views_current = $2, paid_views = $3, updated_at = $4 WHERE id = $1`,
				s.ID, alloc.Submission.ViewsCurrent, alloc.Submission.PaidViews, now); err != nil {
				return err
			}
		}
		if alloc.Outcome == domain.OutcomePaid {
			a := alloc.Account
			if _, err = tx.Exec(ctx, `INSERT INTO campaign_user_accounts
    (campaign_id, user_id, paid_kz, total_views_paid, cap_reached_notified)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (campaign_id, user_id) DO UPDATE
SET paid_kz = EXCLUDED.paid_kz,
    total_views_paid = EXCLUDED.total_views_paid,
    cap_reached_notified = EXCLUDED.cap_reached_notified`,
				a.CampaignID, a.UserID, a.PaidKz, a.TotalViewsPaid, a.CapReachedNotified); err != nil {
				return err
			}
		}
		if alloc.Campaign.Spent != c.Spent || alloc.Campaign.Status != c.Status {
			alloc.Campaign.UpdatedAt = now
			if _, err = tx.Exec(ctx, `UPDATE campaigns SET spent = $2, status = $3, updated_at = $4 WHERE id = $1`,
				c.ID, alloc.Campaign.Spent, string(alloc.Campaign.Status), now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Allocation{}, err
	}
	return alloc, inconsistent
}

// ListStandings returns accounts with the live views of their approved
// submissions.
func (r *LedgerRepository) ListStandings(ctx context.Context, campaignID int64) ([]domain.AccountStanding, error) {
	rows, err := r.pool.Query(ctx, `SELECT a.campaign_id, a.user_id, a.paid_kz, a.total_views_paid, a.cap_reached_notified,
    COALESCE((
        SELECT sum(s.views_current)
        FROM submissions s
        WHERE s.campaign_id = a.campaign_id AND s.user_id = a.user_id AND s.status = 'approved'
    ), 0)::BIGINT
FROM campaign_user_accounts a
WHERE a.campaign_id = $1
ORDER BY a.paid_kz DESC, a.total_views_paid DESC, a.user_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountStanding, error) {
		var st domain.AccountStanding
		err := row.Scan(
			&st.Account.CampaignID,
			&st.Account.UserID,
			&st.Account.PaidKz,
			&st.Account.TotalViewsPaid,
			&st.Account.CapReachedNotified,
			&st.LiveViews,
		)
		return st, err
	})
}

// ResetUser deletes a user's submissions and account under the campaign
// lock so no allocation interleaves.
func (r *LedgerRepository) ResetUser(ctx context.Context, campaignID int64, userID string) (int64, error) {
	var deleted int64
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM submissions WHERE campaign_id = $1 AND user_id = $2`, campaignID, userID)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected()
		_, err = tx.Exec(ctx, `DELETE FROM campaign_user_accounts WHERE campaign_id = $1 AND user_id = $2`, campaignID, userID)
		return err
	})
	return deleted, err
}

// inTx runs fn in a serializable transaction, retrying serialization
// failures.
func (r *LedgerRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.runTx(ctx, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (r *LedgerRepository) runTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		platforms []string
		status    string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.RatePer1000,
		&c.Budget,
		&c.MaxPayoutPerUser,
		&c.MaxPostsPerUser,
		&platforms,
		&c.Spent,
		&status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Status = domain.CampaignStatus(status)
	c.AllowedPlatforms = make([]domain.Platform, 0, len(platforms))
	for _, p := range platforms {
		c.AllowedPlatforms = append(c.AllowedPlatforms, domain.Platform(p))
	}
	return c, nil
}

func scanSubmission(row pgx.Row) (domain.Submission, error) {
	var (
		s                domain.Submission
		platform, status string
	)
	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.UserID,
		&s.URL,
		&platform,
		&s.PostID,
		&status,
		&s.ViewsCurrent,
		&s.PaidViews,
		&s.Quarantined,
		&s.CreatedAt,
		&s.ApprovedAt,
		&s.UpdatedAt,
	)
	s.Platform = domain.Platform(platform)
	s.Status = domain.SubmissionStatus(status)
	return s, err
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.CampaignID, &a.UserID, &a.PaidKz, &a.TotalViewsPaid, &a.CapReachedNotified)
	return a, err
}

func platformsToText(ps []domain.Platform) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, string(p))
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
