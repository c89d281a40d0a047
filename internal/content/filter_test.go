// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegiv/merwah-go/internal/model"
)

func sampleNews() []model.NewsArticle {
	return []model.NewsArticle{
		{ID: 1, Title: "New Falcon Species Discovered", Category: "Conservation", Excerpt: "Researchers identify a new subspecies"},
		{ID: 2, Title: "Annual Falcon Festival", Category: "Events", Excerpt: "Record participation this year"},
		{ID: 3, Title: "Traditional Training Methods", Category: "Culture", Excerpt: "Elders share techniques"},
	}
}

func ids(items []model.NewsArticle) []int64 {
	out := make([]int64, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	news := sampleNews()

	tests := []struct {
		name string
		term string
		want []int64
	}{
		{"empty term returns all", "", []int64{1, 2, 3}},
		{"blank term returns all", "   ", []int64{1, 2, 3}},
		{"surrounding space ignored", "  festival ", []int64{2}},
		{"title match", "festival", []int64{2}},
		{"case insensitive", "FALCON", []int64{1, 2}},
		{"category match", "culture", []int64{3}},
		{"excerpt match", "subspecies", []int64{1}},
		{"no match", "pigeon", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(news, tt.term, NewsFields)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_DoesNotSearchOtherFields(t *testing.T) {
	news := []model.NewsArticle{{ID: 1, Title: "A", Content: "hidden falcon"}}
	assert.Empty(t, Filter(news, "hidden", NewsFields))
}

func TestFilter_Idempotent(t *testing.T) {
	news := sampleNews()
	once := Filter(news, "falcon", NewsFields)
	twice := Filter(once, "falcon", NewsFields)
	assert.Equal(t, once, twice)
}

func TestFilter_ReturnsCopy(t *testing.T) {
	news := sampleNews()
	got := Filter(news, "", NewsFields)
	got[0].Title = "changed"
	assert.Equal(t, "New Falcon Species Discovered", news[0].Title)
}

func TestFilter_Unicode(t *testing.T) {
	falcons := []model.Falcon{
		{ID: "a", NameAr: "صقر شاهين", Category: "Peregrine"},
		{ID: "b", NameAr: "حر", Category: "SAKER"},
	}

	got := Filter(falcons, "شاهين", FalconFields)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got = Filter(falcons, "saker", FalconFields)
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFieldFuncs(t *testing.T) {
	f := model.Fatwa{Title: "T", Category: "C", Scholar: "S", Question: "Q"}
	assert.Equal(t, []string{"T", "C", "S"}, FatwaFields(f))

	s := model.Story{Title: "T", Category: "C", Excerpt: "E", Content: "X"}
	assert.Equal(t, []string{"T", "C", "E"}, StoryFields(s))
}
