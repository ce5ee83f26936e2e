package redisadapter

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

var (
	_ port.LeaderboardPublisher = (*Publisher)(nil)
	_ port.Notifier             = (*Publisher)(nil)
)

// Publisher pushes leaderboards and events to the front end through redis.
// The latest leaderboard of each campaign is kept under
// {prefix}:leaderboard:{id} and every update is announced on the
// {prefix}:leaderboard channel. Events go to the {prefix}:events channel.
type Publisher struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPublisher returns a Publisher. ttl bounds how long a stored
// leaderboard survives without refresh; zero keeps it forever.
func NewPublisher(rc *redis.Client, prefix string, ttl time.Duration) *Publisher {
	return &Publisher{rc: rc, prefix: prefix, ttl: ttl}
}

// LeaderboardKey returns the key holding the campaign's leaderboard.
func (p *Publisher) LeaderboardKey(campaignID int64) string {
	return p.prefix + ":leaderboard:" + strconv.FormatInt(campaignID, 10)
}

// PublishLeaderboard stores and announces lb in one pipeline.
func (p *Publisher) PublishLeaderboard(ctx context.Context, lb domain.Leaderboard) error {
	payload, err := json.Marshal(lb)
	if err != nil {
		return err
	}
	_, err = p.rc.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, p.LeaderboardKey(lb.CampaignID), payload, p.ttl)
		pipe.Publish(ctx, p.prefix+":leaderboard", payload)
		return nil
	})
	return err
}

// Notify publishes event on the events channel.
func (p *Publisher) Notify(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rc.Publish(ctx, p.prefix+":events", payload).Err()
}
