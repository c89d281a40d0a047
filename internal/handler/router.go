// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SectionRoutes is the route set every content section answers.
type SectionRoutes interface {
	List(w http.ResponseWriter, r *http.Request)
	NewForm(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Previewer is implemented by sections with a Markdown preview.
type Previewer interface {
	Preview(w http.ResponseWriter, r *http.Request)
}

// RegisterSection mounts a section under base.
func RegisterSection(r chi.Router, base string, h SectionRoutes) {
	r.Route(base, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get(RouteSuffixNew, h.NewForm)
		if p, ok := h.(Previewer); ok {
			r.Post(RouteSuffixPreview, p.Preview)
		}
		r.Get(RouteParamID, h.View)
		r.Get(RouteParamID+RouteSuffixEdit, h.Edit)
		r.Post(RouteParamID+RouteSuffixDelete, h.Delete)
	})
}
