package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/merwah-go/internal/model"
)

func seedDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("invalid seed date %q: %v", s, err))
	}
	return t
}

// SeedNews returns the initial news articles.
func SeedNews() []model.NewsArticle {
	return []model.NewsArticle{
		{
			ID:       1,
			Title:    "New Falcon Species Discovered in the Arabian Desert",
			Excerpt:  "Researchers have identified a new subspecies of falcon native to the Arabian Peninsula...",
			Content:  "A field team surveying the Empty Quarter has documented a previously undescribed falcon subspecies.",
			Category: "Conservation",
			Status:   model.StatusPublished,
			Date:     seedDate("2024-01-15"),
			Views:    1250,
			Image:    "https://images.unsplash.com/photo-1519681393784-d120267933ba?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:       2,
			Title:    "Annual Falcon Festival Announces Record Participation",
			Excerpt:  "This year's festival will feature over 500 participants from across the region...",
			Content:  "Organisers expect the largest gathering of falconers in the festival's history.",
			Category: "Events",
			Status:   model.StatusDraft,
			Date:     seedDate("2024-01-12"),
			Views:    890,
			Image:    "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:       3,
			Title:    "Traditional Falcon Training Methods Preserved",
			Excerpt:  "Ancient techniques passed down through generations continue to be practiced...",
			Content:  "Elders and young falconers meet each winter to keep the old training methods alive.",
			Category: "Culture",
			Status:   model.StatusPublished,
			Date:     seedDate("2024-01-10"),
			Views:    2100,
			Image:    "https://images.unsplash.com/photo-1546182990-dffeafbe841d?auto=format&fit=crop&w=800&q=60",
		},
	}
}

// SeedStories returns the initial stories.
func SeedStories() []model.Story {
	return []model.Story{
		{
			ID:       1,
			Title:    "The Last Hunt of Sheikh Ahmad",
			Excerpt:  "A tale of tradition, wisdom, and the sacred bond between a falconer and his bird...",
			Category: "Traditional",
			Status:   model.StatusPublished,
			Date:     seedDate("2024-01-14"),
			Views:    3200,
			Likes:    245,
		},
		{
			ID:       2,
			Title:    "Whispers in the Wind",
			Excerpt:  "Young Khalid discovers the ancient art of falconry from his grandfather...",
			Category: "Coming of Age",
			Status:   model.StatusDraft,
			Date:     seedDate("2024-01-11"),
			Views:    150,
			Likes:    12,
		},
		{
			ID:       3,
			Title:    "The Golden Feather",
			Excerpt:  "A mystical story about a legendary falcon that grants wisdom to its chosen falconer...",
			Category: "Folklore",
			Status:   model.StatusPublished,
			Date:     seedDate("2024-01-08"),
			Views:    5600,
			Likes:    892,
		},
	}
}

// SeedFatwas returns the initial fatwas.
func SeedFatwas() []model.Fatwa {
	return []model.Fatwa{
		{
			ID:       1,
			Title:    "Ruling on Training Falcons During Hunting Season",
			Question: "Is it permissible to train falcons during the official hunting season?",
			Category: "Training",
			Scholar:  "Sheikh Abdullah Al-Mansouri",
			Status:   model.StatusPublished,
			Date:     seedDate("2024-01-13"),
			Views:    2800,
		},
		{
			ID:       2,
			Title:    "Permissibility of Falcon Racing for Prize Money",
			Question: "What is the Islamic ruling on participating in falcon races with monetary prizes?",
			Category: "Competition",
			Scholar:  "Dr. Muhammad Al-Falahi",
			Status:   model.StatusUnderReview,
			Date:     seedDate("2024-01-09"),
			Views:    1200,
		},
		{
			ID:       3,
			Title:    "Breeding Falcons for Commercial Purposes",
			Question: "Is it allowed to breed falcons specifically for selling them?",
			Category: "Breeding",
			Scholar:  "Sheikh Omar Al-Quraishi",
			Status:   model.StatusPublished,
			Date:     seedDate("2024-01-05"),
			Views:    4100,
		},
	}
}

// SeedActivity records the initial activity entries when the table is empty.
func SeedActivity(ctx context.Context, db *sql.DB, now time.Time) error {
	queries := New(db)

	count, err := queries.CountActivity(ctx)
	if err != nil {
		return fmt.Errorf("counting activity: %w", err)
	}
	if count > 0 {
		slog.Info("activity already present, skipping seed")
		return nil
	}

	entries := []struct {
		kind  string
		title string
		ago   time.Duration
	}{
		{model.ActivityNews, "Desert Falcon Sighting", 48 * time.Hour},
		{model.ActivityFatwa, "Ruling on Falcon Training", 24 * time.Hour},
		{model.ActivityStory, "The Hunter's Tale", 5 * time.Hour},
		{model.ActivityNews, "Falcon Conservation Update", 2 * time.Hour},
	}

	for _, e := range entries {
		if _, err := queries.CreateActivity(ctx, CreateActivityParams{
			Kind:      e.kind,
			Level:     model.ActivityLevelInfo,
			Title:     e.title,
			CreatedAt: now.Add(-e.ago).UTC().Truncate(time.Second),
		}); err != nil {
			return fmt.Errorf("seeding activity %q: %w", e.title, err)
		}
	}

	slog.Info("seeded activity", "count", len(entries))
	return nil
}
