// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/notify"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/store"
)

// FalconCategories are the suggested species for a listing.
var FalconCategories = []string{"Peregrine", "Saker", "Gyrfalcon", "Lanner", "Hybrid"}

// FalconsHandler handles the falcons section, which is backed by the
// remote gateway.
type FalconsHandler struct {
	stubs
	renderer      *render.Renderer
	list          *content.ListView[model.Falcon]
	drafts        *content.Drafts[*content.FalconForm]
	activity      activityRecorder
	meta          sectionMeta
	maxUploadSize int64
}

// NewFalconsHandler creates a falcons handler. list must be a remote list view.
func NewFalconsHandler(renderer *render.Renderer, queries *store.Queries, list *content.ListView[model.Falcon], drafts *content.Drafts[*content.FalconForm], maxUploadSize int64) *FalconsHandler {
	return &FalconsHandler{
		stubs:    stubs{renderer: renderer, listPath: RouteFalcons},
		renderer: renderer,
		list:     list,
		drafts:   drafts,
		activity: newActivityRecorder(queries),
		meta: sectionMeta{
			Path:         RouteFalcons,
			Kind:         model.ActivityFalcon,
			Title:        "Falcons",
			Subtitle:     "Falcons listed for sale",
			NewLabel:     "Add Falcon",
			FormTitle:    "Falcons Management",
			FormSubtitle: "Add a new falcon listing",
			Categories:   FalconCategories,
		},
		maxUploadSize: maxUploadSize,
	}
}

// List handles GET /falcons. The collection is refreshed from the gateway
// on every visit; a failed fetch keeps what is already known.
func (h *FalconsHandler) List(w http.ResponseWriter, r *http.Request) {
	var rec notify.Recorder
	if err := h.list.Init(r.Context(), &rec); err != nil {
		slog.Error("failed to load falcons", "error", err)
	}

	var n *notify.Notification
	if last, ok := rec.Last(); ok {
		n = &last
	}

	renderPage(w, r, h.renderer, http.StatusOK, "admin/falcons", render.TemplateData{
		Title:        h.meta.Title,
		Notification: n,
		Data:         ListPage[model.Falcon]{View: h.list.View(r.URL.Query().Get(FieldQuery)), Section: h.meta},
	})
}

// NewForm handles GET /falcons/new.
func (h *FalconsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	id, form := h.drafts.Resume(r.URL.Query().Get(FieldDraftID))
	h.renderForm(w, r, http.StatusOK, id, form, nil, nil)
}

// Create handles POST /falcons with a multipart body.
func (h *FalconsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			notifyError(w, r, h.renderer, RouteFalcons+RouteSuffixNew, "Error", "The image is too large")
			return
		}
		notifyError(w, r, h.renderer, RouteFalcons+RouteSuffixNew, "Error", "Invalid form data")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	values := url.Values(r.MultipartForm.Value)
	id, form := h.drafts.Resume(values.Get(FieldDraftID))

	if err := form.Apply(values); err != nil {
		slog.Warn("invalid form values", "error", err, "section", RouteFalcons)
		h.renderForm(w, r, http.StatusBadRequest, id, form, nil, &notify.Notification{
			Title: "Error", Description: "Invalid form data", Variant: notify.VariantDestructive,
		})
		return
	}

	if values.Get(FieldClearImage) != "" {
		_ = form.ChooseFile(nil)
	}

	upload, err := readUpload(r)
	if err != nil {
		logAndInternalError(w, "failed to read upload", "error", err)
		return
	}
	if upload != nil {
		if err := form.ChooseFile(upload); err != nil {
			h.renderForm(w, r, http.StatusUnprocessableEntity, id, form, map[string]bool{FieldImage: true}, &notify.Notification{
				Title:       "Error",
				Description: "The selected file is not a supported image",
				Variant:     notify.VariantDestructive,
			})
			return
		}
	}

	var out content.Capture
	err = form.Submit(r.Context(), &out, "")
	if err == nil && out.Navigated() {
		h.drafts.Drop(id)
		h.activity.record(r.Context(), model.ActivityFalcon, values.Get("name_ar"), "listed")
		if n, ok := out.Last(); ok {
			h.renderer.Notify(r, n)
		}
		http.Redirect(w, r, out.Target, http.StatusSeeOther)
		return
	}

	status, invalid, n := submitFailure(&out, err)
	h.renderForm(w, r, status, id, form, invalid, n)
}

// readUpload returns the submitted image, or nil when no file was chosen.
func readUpload(r *http.Request) (*model.Upload, error) {
	file, header, err := r.FormFile(FieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if header.Size == 0 {
		return nil, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &model.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *FalconsHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, id string, form *content.FalconForm, invalid map[string]bool, n *notify.Notification) {
	renderPage(w, r, h.renderer, status, "admin/falcons_form", render.TemplateData{
		Title:        h.meta.FormTitle,
		Notification: n,
		Data: FormPage[content.FalconDraft]{
			Section: h.meta,
			DraftID: id,
			Draft:   form.Draft(),
			Invalid: invalid,
		},
	})
}
