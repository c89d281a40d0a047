// Package logging provides a slog handler that mirrors warnings and errors
// into the activity feed shown on the dashboard.
package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/store"
)

// ActivityLogHandler is a slog.Handler that wraps another handler and also
// writes records at or above its level to the activity table.
type ActivityLogHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level
}

// NewActivityLogHandler wraps inner. WARN and above are also written to the
// activity table.
func NewActivityLogHandler(inner slog.Handler, db *sql.DB) *ActivityLogHandler {
	return NewActivityLogHandlerWithLevel(inner, db, slog.LevelWarn)
}

// NewActivityLogHandlerWithLevel creates an ActivityLogHandler with a custom minimum level.
func NewActivityLogHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *ActivityLogHandler {
	return &ActivityLogHandler{
		inner:   inner,
		queries: store.New(db),
		level:   level,
	}
}

// Enabled implements slog.Handler.
func (h *ActivityLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ActivityLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.record(r)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *ActivityLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ActivityLogHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *ActivityLogHandler) WithGroup(name string) slog.Handler {
	return &ActivityLogHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
	}
}

// record writes r to the activity table. Failures are dropped: logging them
// would recurse into this handler.
func (h *ActivityLogHandler) record(r slog.Record) {
	created := r.Time
	if created.IsZero() {
		created = time.Now()
	}

	// Background context so the entry survives a cancelled request.
	_, _ = h.queries.CreateActivity(context.Background(), store.CreateActivityParams{
		Kind:      kindOf(r),
		Level:     activityLevel(r.Level),
		Title:     r.Message,
		Message:   attrsText(r),
		CreatedAt: created.UTC().Truncate(time.Second),
	})
}

func activityLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.ActivityLevelError
	case level >= slog.LevelWarn:
		return model.ActivityLevelWarning
	default:
		return model.ActivityLevelInfo
	}
}

// kindOf reads the "category" attribute. Unknown or missing categories map
// to the system kind.
func kindOf(r slog.Record) string {
	kind := model.ActivitySystem
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "category" {
			return true
		}
		switch v := a.Value.String(); v {
		case model.ActivityNews, model.ActivityStory, model.ActivityFatwa, model.ActivityFalcon:
			kind = v
		}
		return false
	})
	return kind
}

// attrsText renders the record attributes, minus category, as key=value pairs.
func attrsText(r slog.Record) string {
	var sb strings.Builder
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			return true
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		sb.WriteString(a.Value.String())
		return true
	})
	return sb.String()
}
