// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/notify"
)

// List routes the create forms return to.
const (
	NewsPath    = "/news"
	StoriesPath = "/stories"
	FatwasPath  = "/fatwas"
	FalconsPath = "/falcons"
)

const requiredFieldsMessage = "Please fill in all required fields."

// Clock returns the current time.
type Clock func() time.Time

// NewNewsForm creates a news form that appends to store on submit.
func NewNewsForm(store *Collection[model.NewsArticle], now Clock) *Form[NewsDraft] {
	return NewForm(FormConfig[NewsDraft]{
		Statuses:        model.NewsStatuses,
		RequiredMessage: requiredFieldsMessage,
		Submit: func(_ context.Context, out Outlet, d NewsDraft, status model.Status) (bool, error) {
			store.AppendWith(func(current []model.NewsArticle) model.NewsArticle {
				return model.NewsArticle{
					ID:       nextID(current, func(a model.NewsArticle) int64 { return a.ID }),
					Title:    d.Title,
					Excerpt:  d.Excerpt,
					Content:  d.Content,
					Category: d.Category,
					Status:   status,
					Date:     today(now),
				}
			})
			out.Notify(submitted("News article", d.Title, status))
			out.Navigate(NewsPath)
			return false, nil
		},
	})
}

// NewStoryForm creates a story form that appends to store on submit.
func NewStoryForm(store *Collection[model.Story], now Clock) *Form[StoryDraft] {
	return NewForm(FormConfig[StoryDraft]{
		Statuses:        model.StoryStatuses,
		RequiredMessage: requiredFieldsMessage,
		Submit: func(_ context.Context, out Outlet, d StoryDraft, status model.Status) (bool, error) {
			store.AppendWith(func(current []model.Story) model.Story {
				return model.Story{
					ID:       nextID(current, func(s model.Story) int64 { return s.ID }),
					Title:    d.Title,
					Excerpt:  d.Excerpt,
					Content:  d.Content,
					Category: d.Category,
					Status:   status,
					Date:     today(now),
				}
			})
			out.Notify(submitted("Story", d.Title, status))
			out.Navigate(StoriesPath)
			return false, nil
		},
	})
}

// NewFatwaForm creates a fatwa form that appends to store on submit.
func NewFatwaForm(store *Collection[model.Fatwa], now Clock) *Form[FatwaDraft] {
	return NewForm(FormConfig[FatwaDraft]{
		Statuses:        model.FatwaStatuses,
		RequiredMessage: requiredFieldsMessage,
		Submit: func(_ context.Context, out Outlet, d FatwaDraft, status model.Status) (bool, error) {
			store.AppendWith(func(current []model.Fatwa) model.Fatwa {
				return model.Fatwa{
					ID:       nextID(current, func(f model.Fatwa) int64 { return f.ID }),
					Title:    d.Title,
					Question: d.Question,
					Answer:   d.Answer,
					Evidence: d.Evidence,
					Category: d.Category,
					Scholar:  d.Scholar,
					Status:   status,
					Date:     today(now),
				}
			})
			out.Notify(submitted("Fatwa", d.Title, status))
			out.Navigate(FatwasPath)
			return false, nil
		},
	})
}

func submitted(noun, title string, status model.Status) notify.Notification {
	return notify.Notification{
		Title:       "Success!",
		Description: fmt.Sprintf("%s \"%s\" has been %s.", noun, title, strings.ToLower(string(status))),
	}
}

func nextID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}

func today(now Clock) time.Time {
	if now == nil {
		now = time.Now
	}
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
