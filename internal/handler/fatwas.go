package handler

import (
	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/store"
)

// FatwasHandler handles the fatwas section.
type FatwasHandler struct {
	*localSection[model.Fatwa, content.FatwaDraft]
	stubs
}

// NewFatwasHandler creates a fatwas handler.
func NewFatwasHandler(renderer *render.Renderer, queries *store.Queries, lib *content.Library, drafts *content.Drafts[*content.Form[content.FatwaDraft]]) *FatwasHandler {
	meta := sectionMeta{
		Path:         RouteFatwas,
		Kind:         model.ActivityFatwa,
		Title:        "Fatwas Management",
		Subtitle:     "Islamic rulings and guidance related to falconry",
		NewLabel:     "Issue Fatwa",
		FormTitle:    "Issue Islamic Fatwa",
		FormSubtitle: "Provide guidance on falconry according to Islamic law",
		Categories:   model.FatwaCategories,
		Scholars:     model.Scholars,
	}
	return &FatwasHandler{
		localSection: newLocalSection(renderer, queries,
			content.NewListView(lib.Fatwas, content.FatwaFields),
			drafts, meta,
			func(d content.FatwaDraft) string { return d.Title },
			func(d content.FatwaDraft) (string, string, []PreviewSection, error) {
				sections, err := markdownSections(
					"Question", d.Question,
					"Ruling", d.Answer,
					"Evidence", d.Evidence,
				)
				byline := d.Category
				if d.Scholar != "" {
					byline += " · " + d.Scholar
				}
				return d.Title, byline, sections, err
			},
		),
		stubs: stubs{renderer: renderer, listPath: RouteFatwas},
	}
}
