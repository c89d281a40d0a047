// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFalcon() url.Values {
	return url.Values{
		"name_ar":     {"صقر الحر"},
		"category":    {"Saker"},
		"description": {"Calm, hunts houbara."},
		"price":       {"15000"},
	}
}

func TestFalcons_ListEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/falcons")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing here yet.")
	assert.False(t, env.falcons.Loading())
}

func TestFalcons_Create(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart("/falcons", validFalcon(), "saker.png", testPNG(t))
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/falcons", rec.Header().Get("Location"))

	list := env.follow(rec)
	body := list.Body.String()
	assert.Contains(t, body, "Falcon added successfully")
	assert.Contains(t, body, "صقر الحر")
	assert.Contains(t, body, "15,000.00")
	assert.Contains(t, body, env.gateway.URL+"/uploads/originals/")

	falcons := env.lib.Falcons.All()
	require.Len(t, falcons, 1)
	assert.NotEmpty(t, falcons[0].ID)
	assert.Equal(t, 15000.0, falcons[0].Price)

	// The gateway is the source of truth on the next visit.
	env.get("/falcons")
	assert.Equal(t, 1, env.lib.Falcons.Len())
}

func TestFalcons_CreateMissingImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart("/falcons", validFalcon(), "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "All fields are required")
	assert.Contains(t, body, `value="Saker"`)
	assert.Equal(t, 0, env.lib.Falcons.Len())
}

func TestFalcons_CreateNegativePrice(t *testing.T) {
	env := newTestEnv(t)

	values := validFalcon()
	values.Set("price", "-1")
	rec := env.postMultipart("/falcons", values, "saker.png", testPNG(t))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Price must be a non-negative number")
	assert.Equal(t, 0, env.lib.Falcons.Len())
}

func TestFalcons_CreateNotAnImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart("/falcons", validFalcon(), "notes.png", []byte("plain text"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "not a supported image")
}

func TestFalcons_ImageKeptAcrossResubmit(t *testing.T) {
	env := newTestEnv(t)

	values := validFalcon()
	values.Del("description")
	rec := env.postMultipart("/falcons", values, "saker.png", testPNG(t))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "saker.png")
	assert.Contains(t, body, `src="data:image/`)

	values = validFalcon()
	values.Set(FieldDraftID, draftID(t, body))
	rec = env.postMultipart("/falcons", values, "", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, 1, env.lib.Falcons.Len())
}

func TestFalcons_ClearImage(t *testing.T) {
	env := newTestEnv(t)

	values := validFalcon()
	values.Del("price")
	rec := env.postMultipart("/falcons", values, "saker.png", testPNG(t))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	values = validFalcon()
	values.Set(FieldDraftID, draftID(t, rec.Body.String()))
	values.Set(FieldClearImage, "1")
	rec = env.postMultipart("/falcons", values, "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotContains(t, rec.Body.String(), "saker.png")
}

func TestFalcons_GatewayDown(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	api.Close()
	env := newTestEnvWithGateway(t, api)

	list := env.get("/falcons")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Failed to load falcons")

	rec := env.postMultipart("/falcons", validFalcon(), "saker.png", testPNG(t))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Failed to add falcon")
	assert.Contains(t, body, "saker.png")
	assert.Equal(t, 0, env.lib.Falcons.Len())
}

func TestFalcons_NoPreviewRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postForm("/falcons/preview", url.Values{})
	assert.NotEqual(t, http.StatusOK, rec.Code)
}
