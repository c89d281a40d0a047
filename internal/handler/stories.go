package handler

import (
	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/store"
)

// StoriesHandler handles the stories section.
type StoriesHandler struct {
	*localSection[model.Story, content.StoryDraft]
	stubs
}

// NewStoriesHandler creates a stories handler.
func NewStoriesHandler(renderer *render.Renderer, queries *store.Queries, lib *content.Library, drafts *content.Drafts[*content.Form[content.StoryDraft]]) *StoriesHandler {
	meta := sectionMeta{
		Path:         RouteStories,
		Kind:         model.ActivityStory,
		Title:        "Stories Management",
		Subtitle:     "Share inspiring falcon stories and folklore",
		NewLabel:     "Write Story",
		FormTitle:    "Write Falcon Story",
		FormSubtitle: "Tell a tale of falcons and the people who fly them",
		Categories:   model.StoryCategories,
	}
	return &StoriesHandler{
		localSection: newLocalSection(renderer, queries,
			content.NewListView(lib.Stories, content.StoryFields),
			drafts, meta,
			func(d content.StoryDraft) string { return d.Title },
			func(d content.StoryDraft) (string, string, []PreviewSection, error) {
				sections, err := markdownSections("Excerpt", d.Excerpt, "Story", d.Content)
				return d.Title, d.Category, sections, err
			},
		),
		stubs: stubs{renderer: renderer, listPath: RouteStories},
	}
}
