// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/notify"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/store"
)

// sectionMeta names one content section for templates and notifications.
type sectionMeta struct {
	Path         string
	Kind         string // activity kind
	Title        string // list page heading
	Subtitle     string
	NewLabel     string // create button
	FormTitle    string
	FormSubtitle string
	Categories   []string
	Scholars     []string
}

// ListPage is the data behind a list template.
type ListPage[T any] struct {
	content.View[T]
	Section sectionMeta
}

// FormPage is the data behind a create-form template.
type FormPage[D any] struct {
	Section  sectionMeta
	DraftID  string
	Draft    D
	Status   model.Status
	Statuses []model.Status
	Invalid  map[string]bool
}

// HasError reports whether field failed validation.
func (p FormPage[D]) HasError(field string) bool {
	return p.Invalid[field]
}

// PreviewSection is one rendered block of a preview page.
type PreviewSection struct {
	Label string
	Body  template.HTML
}

// PreviewPage is the data behind the preview template.
type PreviewPage struct {
	Section  sectionMeta
	Heading  string
	Category string
	Sections []PreviewSection
}

// previewFunc renders the Markdown blocks of a draft.
type previewFunc[D any] func(d D) (heading, category string, sections []PreviewSection, err error)

// localSection serves a content type kept in memory: News, Stories and Fatwas.
type localSection[T any, D any] struct {
	renderer *render.Renderer
	list     *content.ListView[T]
	drafts   *content.Drafts[*content.Form[D]]
	activity activityRecorder
	meta     sectionMeta
	preview  previewFunc[D]
	title    func(D) string
}

func newLocalSection[T any, D any](
	renderer *render.Renderer,
	queries *store.Queries,
	list *content.ListView[T],
	drafts *content.Drafts[*content.Form[D]],
	meta sectionMeta,
	title func(D) string,
	preview previewFunc[D],
) *localSection[T, D] {
	return &localSection[T, D]{
		renderer: renderer,
		list:     list,
		drafts:   drafts,
		activity: newActivityRecorder(queries),
		meta:     meta,
		preview:  preview,
		title:    title,
	}
}

// List handles GET /<section>.
func (s *localSection[T, D]) List(w http.ResponseWriter, r *http.Request) {
	view := s.list.View(r.URL.Query().Get(FieldQuery))
	renderPage(w, r, s.renderer, http.StatusOK, "admin/"+strings.TrimPrefix(s.meta.Path, "/"), render.TemplateData{
		Title: s.meta.Title,
		Data:  ListPage[T]{View: view, Section: s.meta},
	})
}

// NewForm handles GET /<section>/new. A ?draft_id= value resumes an open form.
func (s *localSection[T, D]) NewForm(w http.ResponseWriter, r *http.Request) {
	id, form := s.drafts.Resume(r.URL.Query().Get(FieldDraftID))
	s.renderForm(w, r, http.StatusOK, id, form, nil, nil)
}

// Create handles POST /<section>.
func (s *localSection[T, D]) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, s.renderer, s.meta.Path+RouteSuffixNew) {
		return
	}

	id, form := s.drafts.Resume(r.PostForm.Get(FieldDraftID))
	if err := form.Apply(r.PostForm); err != nil {
		slog.Warn("invalid form values", "error", err, "section", s.meta.Path)
		s.renderForm(w, r, http.StatusBadRequest, id, form, nil, &notify.Notification{
			Title: "Error", Description: "Invalid form data", Variant: notify.VariantDestructive,
		})
		return
	}

	var out content.Capture
	var err error
	if r.PostForm.Get(FieldAction) == ActionPublish {
		err = form.Publish(r.Context(), &out)
	} else {
		err = form.Submit(r.Context(), &out, model.Status(r.PostForm.Get(FieldStatus)))
	}

	if err == nil && out.Navigated() {
		draft := form.Draft()
		s.drafts.Drop(id)
		s.activity.record(r.Context(), s.meta.Kind, s.title(draft), strings.ToLower(string(form.Status())))
		if n, ok := out.Last(); ok {
			s.renderer.Notify(r, n)
		}
		http.Redirect(w, r, out.Target, http.StatusSeeOther)
		return
	}

	s.submitFailed(w, r, id, form, &out, err)
}

// submitFailed re-renders the form with the notification the submission produced.
func (s *localSection[T, D]) submitFailed(w http.ResponseWriter, r *http.Request, id string, form *content.Form[D], out *content.Capture, err error) {
	status, invalid, n := submitFailure(out, err)
	s.renderForm(w, r, status, id, form, invalid, n)
}

// Preview handles POST /<section>/preview. The draft is rendered but not stored.
func (s *localSection[T, D]) Preview(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, s.renderer, s.meta.Path+RouteSuffixNew) {
		return
	}

	draft, err := content.Decode[D](r.PostForm)
	if err != nil {
		notifyError(w, r, s.renderer, s.meta.Path+RouteSuffixNew, "Error", "Invalid form data")
		return
	}

	heading, category, sections, err := s.preview(draft)
	if err != nil {
		logAndInternalError(w, "failed to render preview", "error", err, "section", s.meta.Path)
		return
	}

	renderPage(w, r, s.renderer, http.StatusOK, TemplatePreview, render.TemplateData{
		Title: "Preview",
		Data: PreviewPage{
			Section:  s.meta,
			Heading:  heading,
			Category: category,
			Sections: sections,
		},
	})
}

func (s *localSection[T, D]) renderForm(w http.ResponseWriter, r *http.Request, status int, id string, form *content.Form[D], invalid map[string]bool, n *notify.Notification) {
	renderPage(w, r, s.renderer, status, "admin/"+strings.TrimPrefix(s.meta.Path, "/")+"_form", render.TemplateData{
		Title:        s.meta.FormTitle,
		Notification: n,
		Data: FormPage[D]{
			Section:  s.meta,
			DraftID:  id,
			Draft:    form.Draft(),
			Status:   form.Status(),
			Statuses: form.Statuses(),
			Invalid:  invalid,
		},
	})
}

// submitFailure maps a failed submission to a status code, the invalid
// fields and the notification to show.
func submitFailure(out *content.Capture, err error) (int, map[string]bool, *notify.Notification) {
	var n *notify.Notification
	if last, ok := out.Last(); ok {
		n = &last
	}

	var ve *content.ValidationError
	switch {
	case errors.As(err, &ve):
		invalid := make(map[string]bool, len(ve.Fields))
		for _, f := range ve.Fields {
			invalid[f] = true
		}
		return http.StatusUnprocessableEntity, invalid, n
	case errors.Is(err, content.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, map[string]bool{FieldStatus: true}, &notify.Notification{
			Title: "Validation Error", Description: "That status is not allowed here.", Variant: notify.VariantDestructive,
		}
	case errors.Is(err, content.ErrSubmitInFlight):
		return http.StatusConflict, nil, &notify.Notification{
			Title: "Please wait", Description: "This form is already being submitted.", Variant: notify.VariantDestructive,
		}
	case err != nil:
		if n == nil {
			n = &notify.Notification{Title: "Error", Description: "Something went wrong", Variant: notify.VariantDestructive}
		}
		return http.StatusBadGateway, nil, n
	default:
		// Submit finished without navigating away.
		return http.StatusOK, nil, n
	}
}

// stubs answer the view, edit and delete buttons that have no backing operation yet.
type stubs struct {
	renderer *render.Renderer
	listPath string
}

func (s stubs) notImplemented(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("unwired action", "action", action, "path", s.listPath, "id", chi.URLParam(r, "id"))
		notifyAndRedirect(w, r, s.renderer, s.listPath, notify.Notification{
			Title:       "Not available",
			Description: action + " is not yet implemented.",
		})
	}
}

// View handles GET /<section>/{id}.
func (s stubs) View(w http.ResponseWriter, r *http.Request) { s.notImplemented("View")(w, r) }

// Edit handles GET /<section>/{id}/edit.
func (s stubs) Edit(w http.ResponseWriter, r *http.Request) { s.notImplemented("Edit")(w, r) }

// Delete handles POST /<section>/{id}/delete.
func (s stubs) Delete(w http.ResponseWriter, r *http.Request) { s.notImplemented("Delete")(w, r) }
