// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Activity kinds.
const (
	ActivityNews   = "news"
	ActivityStory  = "story"
	ActivityFatwa  = "fatwa"
	ActivityFalcon = "falcon"
	ActivitySystem = "system"
)

// Activity levels.
const (
	ActivityLevelInfo    = "info"
	ActivityLevelWarning = "warning"
	ActivityLevelError   = "error"
)

// Activity is one entry in the dashboard journal.
type Activity struct {
	ID        int64
	Kind      string
	Level     string
	Title     string
	Message   string
	CreatedAt time.Time
}
