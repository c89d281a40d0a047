// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/olegiv/merwah-go/internal/model"

// NewsDraft is the in-progress state of a news article.
type NewsDraft struct {
	Title    string `json:"title" validate:"notblank"`
	Excerpt  string `json:"excerpt" validate:"notblank"`
	Content  string `json:"content" validate:"notblank"`
	Category string `json:"category" validate:"notblank"`
}

// StoryDraft is the in-progress state of a story.
type StoryDraft struct {
	Title    string `json:"title" validate:"notblank"`
	Excerpt  string `json:"excerpt" validate:"notblank"`
	Content  string `json:"content" validate:"notblank"`
	Category string `json:"category" validate:"notblank"`
}

// FatwaDraft is the in-progress state of a fatwa.
type FatwaDraft struct {
	Title    string `json:"title" validate:"notblank"`
	Question string `json:"question" validate:"notblank"`
	Answer   string `json:"answer" validate:"notblank"`
	Evidence string `json:"evidence"`
	Category string `json:"category" validate:"notblank"`
	Scholar  string `json:"scholar" validate:"notblank"`
}

// FalconDraft is the in-progress state of a falcon listing.
type FalconDraft struct {
	NameAr      string        `json:"name_ar" validate:"notblank"`
	Category    string        `json:"category" validate:"notblank"`
	Description string        `json:"description" validate:"notblank"`
	Price       string        `json:"price" validate:"notblank"`
	Image       *model.Upload `json:"-" validate:"required"`
	Preview     string        `json:"-"`
}
