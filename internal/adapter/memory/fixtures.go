package memory

import "viralizza/internal/core/domain"

// PutSubmission overwrites a stored submission as is, bypassing every
// check. It lets tests load records in states the public API cannot
// produce, such as a quarantined or inconsistent submission.
func (l *Ledger) PutSubmission(s domain.Submission) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submissions[s.ID] = s
	if s.ID > l.lastID {
		l.lastID = s.ID
	}
}

// PutAccount overwrites a stored account.
func (l *Ledger) PutAccount(a domain.Account) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[accountKey{a.CampaignID, a.UserID}] = a
}

// PutCampaign overwrites a stored campaign.
func (l *Ledger) PutCampaign(c domain.Campaign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.campaigns[c.ID] = c
	if c.ID > l.lastID {
		l.lastID = c.ID
	}
}
