package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

// Seed creates a demo campaign with a few pending submissions when the
// ledger holds no campaigns yet. It goes through the repository so it works
// for every storage driver.
func Seed(ctx context.Context, repo port.LedgerRepository) error {
	existing, err := repo.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	c := &domain.Campaign{
		Name:             "Demo campaign",
		Slug:             "demo-" + uuid.NewString()[:8],
		RatePer1000:      1000,
		Budget:           1_000_000,
		MaxPayoutPerUser: 200_000,
		MaxPostsPerUser:  5,
		AllowedPlatforms: []domain.Platform{domain.PlatformTikTok, domain.PlatformInstagram, domain.PlatformYouTube},
		Status:           domain.CampaignActive,
	}
	if err = repo.CreateCampaign(ctx, c); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	posts := []struct {
		user string
		url  string
	}{
		{"demo-user-1", "https://www.tiktok.com/@demo1/video/7000000000000000001"},
		{"demo-user-2", "https://www.instagram.com/reel/Cdemo00002"},
		{"demo-user-3", "https://www.youtube.com/shorts/demo0000003"},
	}
	for _, p := range posts {
		ref, err := domain.ParsePostURL(p.url)
		if err != nil {
			return fmt.Errorf("seed submission: %w", err)
		}
		s := &domain.Submission{
			CampaignID: c.ID,
			UserID:     p.user,
			URL:        p.url,
			Platform:   ref.Platform,
			PostID:     ref.ID,
		}
		if err = repo.CreateSubmission(ctx, s); err != nil {
			return fmt.Errorf("seed submission: %w", err)
		}
	}
	return nil
}
