package domain

import (
	"time"
)

// EventType names a notification relayed to the front end.
type EventType string

const (
	EventUserCapped      EventType = "user.capped"
	EventCampaignClosing EventType = "campaign.closing"
	EventCampaignEnded   EventType = "campaign.ended"
)

// Event is a fire-and-forget notification produced by the payout engine.
type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	CampaignID int64             `json:"campaign_id"`
	UserID     string            `json:"user_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data,omitempty"`
}

// StatusEventType returns the event announcing a move to status s, or
// false when s has no announcement.
func StatusEventType(s CampaignStatus) (EventType, bool) {
	switch s {
	case CampaignClosing:
		return EventCampaignClosing, true
	case CampaignEnded:
		return EventCampaignEnded, true
	default:
		return "", false
	}
}
