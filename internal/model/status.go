// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "slices"

// Status is the publication state of a content entry.
type Status string

// Publication states, in lifecycle order.
const (
	StatusDraft       Status = "Draft"
	StatusUnderReview Status = "Under Review"
	StatusPublished   Status = "Published"
	StatusArchived    Status = "Archived"
)

// statusRank orders statuses along the lifecycle.
var statusRank = map[Status]int{
	StatusDraft:       0,
	StatusUnderReview: 1,
	StatusPublished:   2,
	StatusArchived:    3,
}

// Statuses accepted when creating each content type.
var (
	NewsStatuses  = []Status{StatusDraft, StatusPublished}
	StoryStatuses = []Status{StatusDraft, StatusPublished}
	FatwaStatuses = []Status{StatusDraft, StatusUnderReview, StatusPublished}
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a record may move from one status to another.
// Statuses only move forward; staying in place is allowed.
func CanTransition(from, to Status) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// StatusAllowed reports whether s is in the allowed set.
func StatusAllowed(s Status, allowed []Status) bool {
	return slices.Contains(allowed, s)
}
