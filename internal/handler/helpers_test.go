// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/falconapi"
	"github.com/olegiv/merwah-go/internal/gateway"
	"github.com/olegiv/merwah-go/internal/imaging"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/session"
	"github.com/olegiv/merwah-go/internal/store"
	"github.com/olegiv/merwah-go/internal/testutil"
	"github.com/olegiv/merwah-go/internal/version"
	"github.com/olegiv/merwah-go/web"
)

// testNow is the fixed clock used for created content.
var testNow = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

// testEnv is a fully wired panel backed by a temp database and an
// in-process falcon gateway.
type testEnv struct {
	t        *testing.T
	db       *sql.DB
	queries  *store.Queries
	lib      *content.Library
	router   http.Handler
	gateway  *httptest.Server
	falcons  *content.ListView[model.Falcon]
	newsForm *content.Drafts[*content.Form[content.NewsDraft]]
	cookies  []*http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithGateway(t, newFalconAPI(t))
}

func newTestEnvWithGateway(t *testing.T, api *httptest.Server) *testEnv {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	sm := session.New(db, true)
	templatesFS, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, SessionManager: sm, IsDev: true})
	require.NoError(t, err)

	queries := store.New(db)
	lib := content.NewLibrary(store.SeedNews(), store.SeedStories(), store.SeedFatwas())
	gw := gateway.New(api.URL, gateway.WithTimeout(5*time.Second))
	clock := func() time.Time { return testNow }

	newsDrafts := content.NewDrafts(func() *content.Form[content.NewsDraft] { return content.NewNewsForm(lib.News, clock) })
	storyDrafts := content.NewDrafts(func() *content.Form[content.StoryDraft] { return content.NewStoryForm(lib.Stories, clock) })
	fatwaDrafts := content.NewDrafts(func() *content.Form[content.FatwaDraft] { return content.NewFatwaForm(lib.Fatwas, clock) })
	falconDrafts := content.NewDrafts(func() *content.FalconForm { return content.NewFalconForm(lib.Falcons, gw, imaging.Preview) })
	falconList := content.NewRemoteListView(lib.Falcons, content.FalconFields, content.LoaderFunc[model.Falcon](gw.ListFalcons), content.FalconsLoadFailed)

	dashboard := NewDashboardHandler(renderer, queries, lib)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Get(RouteRoot, dashboard.Dashboard)
	RegisterSection(r, RouteNews, NewNewsHandler(renderer, queries, lib, newsDrafts))
	RegisterSection(r, RouteStories, NewStoriesHandler(renderer, queries, lib, storyDrafts))
	RegisterSection(r, RouteFatwas, NewFatwasHandler(renderer, queries, lib, fatwaDrafts))
	RegisterSection(r, RouteFalcons, NewFalconsHandler(renderer, queries, falconList, falconDrafts, 5<<20))
	r.Get(RouteHealth, NewHealthHandler(db, version.Info{Version: "v-test"}, api.URL).Health)
	r.NotFound(dashboard.NotFound)

	return &testEnv{
		t:        t,
		db:       db,
		queries:  queries,
		lib:      lib,
		router:   r,
		gateway:  api,
		falcons:  falconList,
		newsForm: newsDrafts,
	}
}

// newFalconAPI starts the in-memory falcon gateway.
func newFalconAPI(t *testing.T) *httptest.Server {
	t.Helper()
	var api *falconapi.Server
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.Routes().ServeHTTP(w, r)
	}))
	api = falconapi.NewServer(falconapi.NewRepository(), imaging.NewProcessor(t.TempDir()), falconapi.Config{PublicURL: srv.URL})
	t.Cleanup(srv.Close)
	return srv
}

// do serves req, carrying the session cookie between calls.
func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	e.t.Helper()
	for _, c := range e.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		e.cookies = set
	}
	return rec
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (e *testEnv) postForm(target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *testEnv) postMultipart(target string, values url.Values, filename string, file []byte) *httptest.ResponseRecorder {
	e.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, vs := range values {
		for _, v := range vs {
			require.NoError(e.t, mw.WriteField(k, v))
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile(FieldImage, filename)
		require.NoError(e.t, err)
		_, err = io.Copy(fw, bytes.NewReader(file))
		require.NoError(e.t, err)
	}
	require.NoError(e.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return e.do(req)
}

// follow fetches the Location of a redirect.
func (e *testEnv) follow(rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	e.t.Helper()
	require.Equal(e.t, http.StatusSeeOther, rec.Code, rec.Body.String())
	return e.get(rec.Header().Get("Location"))
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := range 8 {
		img.Set(x, x, color.RGBA{R: 180, G: 120, B: 40, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
