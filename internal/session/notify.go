package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/merwah-go/internal/notify"
)

const notificationKey = "notification"

// PutNotification stores n for display on the next rendered page.
func PutNotification(ctx context.Context, sm *scs.SessionManager, n notify.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		slog.Error("encoding notification", "error", err)
		return
	}
	sm.Put(ctx, notificationKey, data)
}

// PopNotification removes and returns the pending notification, if any.
func PopNotification(ctx context.Context, sm *scs.SessionManager) (notify.Notification, bool) {
	data := sm.PopBytes(ctx, notificationKey)
	if len(data) == 0 {
		return notify.Notification{}, false
	}
	var n notify.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		slog.Warn("discarding unreadable notification", "error", err)
		return notify.Notification{}, false
	}
	return n, true
}

// Sink returns a notify.Sink that queues notifications in the session
// bound to ctx. The last notification wins.
func Sink(ctx context.Context, sm *scs.SessionManager) notify.Sink {
	return notify.SinkFunc(func(n notify.Notification) {
		PutNotification(ctx, sm, n)
	})
}
