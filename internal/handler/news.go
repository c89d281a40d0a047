package handler

import (
	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/markup"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/store"
)

// NewsHandler handles the news section.
type NewsHandler struct {
	*localSection[model.NewsArticle, content.NewsDraft]
	stubs
}

// NewNewsHandler creates a news handler.
func NewNewsHandler(renderer *render.Renderer, queries *store.Queries, lib *content.Library, drafts *content.Drafts[*content.Form[content.NewsDraft]]) *NewsHandler {
	meta := sectionMeta{
		Path:         RouteNews,
		Kind:         model.ActivityNews,
		Title:        "News Management",
		Subtitle:     "Create and manage falcon news articles",
		NewLabel:     "Create News",
		FormTitle:    "Create News Article",
		FormSubtitle: "Share the latest falcon news with the community",
		Categories:   model.NewsCategories,
	}
	return &NewsHandler{
		localSection: newLocalSection(renderer, queries,
			content.NewListView(lib.News, content.NewsFields),
			drafts, meta,
			func(d content.NewsDraft) string { return d.Title },
			previewNews,
		),
		stubs: stubs{renderer: renderer, listPath: RouteNews},
	}
}

func previewNews(d content.NewsDraft) (string, string, []PreviewSection, error) {
	sections, err := markdownSections(
		"Excerpt", d.Excerpt,
		"Content", d.Content,
	)
	return d.Title, d.Category, sections, err
}

// markdownSections renders label/source pairs, skipping empty sources.
func markdownSections(pairs ...string) ([]PreviewSection, error) {
	var sections []PreviewSection
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		body, err := markup.Render(pairs[i+1])
		if err != nil {
			return nil, err
		}
		sections = append(sections, PreviewSection{Label: pairs[i], Body: body})
	}
	return sections, nil
}
