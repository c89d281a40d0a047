package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/store"
)

// activityRecorder writes dashboard activity entries.
type activityRecorder struct {
	queries *store.Queries
	now     func() time.Time
}

func newActivityRecorder(queries *store.Queries) activityRecorder {
	return activityRecorder{queries: queries, now: time.Now}
}

// record stores an info entry. A failure is logged and otherwise ignored,
// the content change it describes has already happened.
func (a activityRecorder) record(ctx context.Context, kind, title, message string) {
	if a.queries == nil {
		return
	}
	_, err := a.queries.CreateActivity(ctx, store.CreateActivityParams{
		Kind:      kind,
		Level:     model.ActivityLevelInfo,
		Title:     title,
		Message:   message,
		CreatedAt: a.now().UTC().Truncate(time.Second),
	})
	if err != nil {
		slog.Warn(LogActivityFailed, "error", err, "kind", kind, "title", title)
	}
}
