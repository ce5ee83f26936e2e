package domain

import "time"

// SubmissionStatus is the review state of a submitted post.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
	SubmissionRemoved  SubmissionStatus = "removed"
)

// CanTransition reports whether a submission may move from s to next.
// Rejected and removed are terminal.
func (s SubmissionStatus) CanTransition(next SubmissionStatus) bool {
	switch s {
	case SubmissionPending:
		return next == SubmissionApproved || next == SubmissionRejected
	case SubmissionApproved:
		return next == SubmissionRemoved
	default:
		return false
	}
}

// Countable reports whether the submission counts against the per-user
// post limit.
func (s SubmissionStatus) Countable() bool {
	return s == SubmissionPending || s == SubmissionApproved
}

// Submission is one post link entered into a campaign.
type Submission struct {
	ID           int64
	CampaignID   int64
	UserID       string
	URL          string
	Platform     Platform
	PostID       string // platform post id, unique per campaign and platform
	Status       SubmissionStatus
	ViewsCurrent int64 // last observed view count, never decreases
	PaidViews    int64 // multiple of BlockSize, <= ViewsCurrent
	Quarantined  bool  // excluded from polling after a ledger inconsistency
	CreatedAt    time.Time
	ApprovedAt   *time.Time
	UpdatedAt    time.Time
}

// CheckLedger verifies the per-submission counter invariants.
func (s Submission) CheckLedger() error {
	if s.ViewsCurrent < 0 || s.PaidViews < 0 {
		return ErrLedgerInconsistent
	}
	if s.PaidViews%BlockSize != 0 || s.PaidViews > s.ViewsCurrent {
		return ErrLedgerInconsistent
	}
	return nil
}
