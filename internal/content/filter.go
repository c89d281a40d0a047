// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/olegiv/merwah-go/internal/model"
)

// FieldsFunc returns the searchable text of an item.
type FieldsFunc[T any] func(item T) []string

// Filter returns the items whose searchable fields contain term, ignoring case.
// Relative order is kept. An empty or blank term matches every item.
func Filter[T any](items []T, term string, fields FieldsFunc[T]) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	// A Caser is stateful and must not be shared between goroutines.
	caser := cases.Fold()
	needle := caser.String(term)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(caser.String(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// NewsFields searches title, category and excerpt.
func NewsFields(a model.NewsArticle) []string {
	return []string{a.Title, a.Category, a.Excerpt}
}

// StoryFields searches title, category and excerpt.
func StoryFields(s model.Story) []string {
	return []string{s.Title, s.Category, s.Excerpt}
}

// FatwaFields searches title, category and scholar.
func FatwaFields(f model.Fatwa) []string {
	return []string{f.Title, f.Category, f.Scholar}
}

// FalconFields searches name, category and description.
func FalconFields(f model.Falcon) []string {
	return []string{f.NameAr, f.Category, f.Description}
}
