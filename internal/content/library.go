// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/olegiv/merwah-go/internal/model"

// Library holds the shared collection of every content type.
type Library struct {
	News    *Collection[model.NewsArticle]
	Stories *Collection[model.Story]
	Fatwas  *Collection[model.Fatwa]
	Falcons *Collection[model.Falcon]
}

// NewLibrary creates a library seeded with the given fixtures. Falcons
// always start empty and are filled from the gateway.
func NewLibrary(news []model.NewsArticle, stories []model.Story, fatwas []model.Fatwa) *Library {
	return &Library{
		News:    NewCollection(news),
		Stories: NewCollection(stories),
		Fatwas:  NewCollection(fatwas),
		Falcons: NewCollection[model.Falcon](nil),
	}
}

// Stats summarizes the library for the dashboard.
type Stats struct {
	TotalNews        int
	StoriesPublished int
	FatwasIssued     int
	FalconsListed    int
	TotalViews       int
}

// Stats computes the dashboard figures.
func (l *Library) Stats() Stats {
	var s Stats

	news := l.News.All()
	s.TotalNews = len(news)
	for _, a := range news {
		s.TotalViews += a.Views
	}

	for _, st := range l.Stories.All() {
		s.TotalViews += st.Views
		if st.Status == model.StatusPublished {
			s.StoriesPublished++
		}
	}

	for _, f := range l.Fatwas.All() {
		s.TotalViews += f.Views
		if f.Status == model.StatusPublished {
			s.FatwasIssued++
		}
	}

	s.FalconsListed = l.Falcons.Len()
	return s
}

// Watch calls fn with the activity kind and new size whenever one of the
// collections changes. The returned function stops watching.
func (l *Library) Watch(fn func(kind string, size int)) (stop func()) {
	stops := []func(){
		l.News.Subscribe(func(items []model.NewsArticle) { fn(model.ActivityNews, len(items)) }),
		l.Stories.Subscribe(func(items []model.Story) { fn(model.ActivityStory, len(items)) }),
		l.Fatwas.Subscribe(func(items []model.Fatwa) { fn(model.ActivityFatwa, len(items)) }),
		l.Falcons.Subscribe(func(items []model.Falcon) { fn(model.ActivityFalcon, len(items)) }),
	}
	return func() {
		for _, s := range stops {
			s()
		}
	}
}
