package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/olegiv/merwah-go/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "merwah-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

func TestMigrate_Idempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'").Scan(&name)
	if err != nil {
		t.Fatalf("sessions table missing: %v", err)
	}
}

func TestCreateActivity(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	a, err := q.CreateActivity(ctx, CreateActivityParams{
		Kind:      model.ActivityNews,
		Level:     model.ActivityLevelInfo,
		Title:     "Falcon Conservation Update",
		Message:   "published",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}

	if a.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if a.Kind != model.ActivityNews {
		t.Errorf("Kind = %q, want %q", a.Kind, model.ActivityNews)
	}
	if !a.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", a.CreatedAt, now)
	}
}

func TestCreateActivity_RejectsUnknownKind(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).CreateActivity(context.Background(), CreateActivityParams{
		Kind:      "poem",
		Level:     model.ActivityLevelInfo,
		Title:     "x",
		CreatedAt: time.Now().UTC(),
	})
	if err == nil {
		t.Fatal("expected CHECK constraint failure for unknown kind")
	}
}

func TestListRecentActivity(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	for i, title := range []string{"first", "second", "third"} {
		if _, err := q.CreateActivity(ctx, CreateActivityParams{
			Kind:      model.ActivityStory,
			Level:     model.ActivityLevelInfo,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("CreateActivity: %v", err)
		}
	}

	items, err := q.ListRecentActivity(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecentActivity: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Title != "third" || items[1].Title != "second" {
		t.Errorf("order = %q, %q; want third, second", items[0].Title, items[1].Title)
	}
}

func TestDeleteActivityBefore(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, d := range []int{0, 10, 40} {
		if _, err := q.CreateActivity(ctx, CreateActivityParams{
			Kind:      model.ActivitySystem,
			Level:     model.ActivityLevelWarning,
			Title:     "entry",
			CreatedAt: base.AddDate(0, 0, -d),
		}); err != nil {
			t.Fatalf("CreateActivity: %v", err)
		}
	}

	deleted, err := q.DeleteActivityBefore(ctx, base.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("DeleteActivityBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	count, err := q.CountActivity(ctx)
	if err != nil {
		t.Fatalf("CountActivity: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSeedActivity(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	if err := SeedActivity(ctx, db, now); err != nil {
		t.Fatalf("SeedActivity: %v", err)
	}
	// Second run is a no-op.
	if err := SeedActivity(ctx, db, now); err != nil {
		t.Fatalf("SeedActivity again: %v", err)
	}

	items, err := New(db).ListRecentActivity(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentActivity: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len = %d, want 4", len(items))
	}
	if items[0].Title != "Falcon Conservation Update" {
		t.Errorf("most recent = %q", items[0].Title)
	}
}

func TestSeedCollections(t *testing.T) {
	news := SeedNews()
	if len(news) != 3 || news[0].ID != 1 || news[0].Views != 1250 {
		t.Errorf("unexpected news seed: %+v", news)
	}
	news[0].Title = "mutated"
	if SeedNews()[0].Title == "mutated" {
		t.Error("SeedNews should return a fresh slice")
	}

	stories := SeedStories()
	if len(stories) != 3 || stories[2].Likes != 892 {
		t.Errorf("unexpected stories seed: %+v", stories)
	}

	fatwas := SeedFatwas()
	if len(fatwas) != 3 || fatwas[1].Status != model.StatusUnderReview {
		t.Errorf("unexpected fatwa seed: %+v", fatwas)
	}
	for _, f := range fatwas {
		if !model.StatusAllowed(f.Status, model.FatwaStatuses) {
			t.Errorf("fatwa %d has unexpected status %q", f.ID, f.Status)
		}
	}
}
