// Package logsink delivers events and leaderboards to the structured log
// when no redis display surface is configured.
package logsink

import (
	"context"
	"log/slog"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

var (
	_ port.Notifier             = (*Sink)(nil)
	_ port.LeaderboardPublisher = (*Sink)(nil)
)

// Sink writes notifications and leaderboards as log records.
type Sink struct {
	logger *slog.Logger
}

// New returns a Sink logging through logger.
func New(logger *slog.Logger) *Sink {
	return &Sink{logger: logger.With("component", "display")}
}

func (s *Sink) Notify(ctx context.Context, event domain.Event) error {
	s.logger.InfoContext(ctx, "event",
		slog.String("id", event.ID),
		slog.String("type", string(event.Type)),
		slog.Int64("campaign_id", event.CampaignID),
		slog.String("user_id", event.UserID),
		slog.Any("data", event.Data),
	)
	return nil
}

func (s *Sink) PublishLeaderboard(ctx context.Context, lb domain.Leaderboard) error {
	top := make([]string, 0, len(lb.Entries))
	for _, e := range lb.Entries {
		top = append(top, e.UserID)
	}
	s.logger.InfoContext(ctx, "leaderboard",
		slog.Int64("campaign_id", lb.CampaignID),
		slog.String("status", string(lb.Status)),
		slog.Int64("spent", lb.Spent),
		slog.Int64("budget", lb.Budget),
		slog.Float64("spent_percent", lb.SpentPercent),
		slog.Any("top", top),
	)
	return nil
}
