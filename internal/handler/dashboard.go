// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/store"
)

// recentActivityLimit is how many activity entries the dashboard shows.
const recentActivityLimit = 10

// DashboardHandler handles the dashboard.
type DashboardHandler struct {
	renderer *render.Renderer
	queries  *store.Queries
	library  *content.Library
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(renderer *render.Renderer, queries *store.Queries, library *content.Library) *DashboardHandler {
	return &DashboardHandler{
		renderer: renderer,
		queries:  queries,
		library:  library,
	}
}

// DashboardPage is the data behind the dashboard template.
type DashboardPage struct {
	Stats    content.Stats
	Activity []store.Activity
}

// Dashboard handles GET /.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	activity, err := h.queries.ListRecentActivity(r.Context(), recentActivityLimit)
	if err != nil {
		// The stats are still worth showing.
		slog.Error("failed to list activity", "error", err)
		activity = nil
	}

	renderPage(w, r, h.renderer, http.StatusOK, TemplateDashboard, render.TemplateData{
		Title: "Dashboard",
		Data: DashboardPage{
			Stats:    h.library.Stats(),
			Activity: activity,
		},
	})
}

// NotFound renders the 404 page.
func (h *DashboardHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusNotFound, TemplateNotFound, render.TemplateData{
		Title: "Page not found",
	})
}
