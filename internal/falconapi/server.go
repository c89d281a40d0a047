// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package falconapi serves the falcon collection API the admin panel
// talks to, backed by memory and a local uploads directory.
package falconapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/olegiv/merwah-go/internal/imaging"
	"github.com/olegiv/merwah-go/internal/model"
)

// Routes.
const (
	RouteFalcons = "/api/falcons"
	RouteUploads = "/uploads"
)

// Server handles the falcon API.
type Server struct {
	repo          *Repository
	processor     *imaging.Processor
	publicURL     string
	maxUploadSize int64
	now           func() time.Time
}

// Config holds server settings.
type Config struct {
	// PublicURL is the externally reachable base used to build image URLs.
	PublicURL     string
	MaxUploadSize int64
}

// NewServer creates a falcon API server storing images with processor.
func NewServer(repo *Repository, processor *imaging.Processor, cfg Config) *Server {
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = 20 << 20
	}
	return &Server{
		repo:          repo,
		processor:     processor,
		publicURL:     strings.TrimRight(cfg.PublicURL, "/"),
		maxUploadSize: cfg.MaxUploadSize,
		now:           time.Now,
	}
}

// Routes returns the API router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get(RouteFalcons, s.List)
	r.Post(RouteFalcons, s.Create)

	uploads := http.StripPrefix(RouteUploads+"/", http.FileServer(http.Dir(s.processor.UploadDir())))
	r.Get(RouteUploads+"/*", uploads.ServeHTTP)
	return r
}

// List handles GET /api/falcons.
func (s *Server) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.List())
}

// Create handles POST /api/falcons with a multipart body holding the
// JSON "data" field and the "image" file.
func (s *Server) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var in model.FalconInput
	if err := json.Unmarshal([]byte(r.FormValue("data")), &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid data field")
		return
	}
	if strings.TrimSpace(in.NameAr) == "" || strings.TrimSpace(in.Category) == "" || in.Price < 0 {
		writeError(w, http.StatusBadRequest, "name_ar, category and a non-negative price are required")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading image failed")
		return
	}
	if !model.IsSupportedImageType(imaging.DetectMimeType(data)) {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported image type")
		return
	}

	id := uuid.NewString()
	res, err := s.processor.ProcessImage(data, id, header.Filename)
	if err != nil {
		slog.Error("failed to process falcon image", "error", err, "filename", header.Filename)
		writeError(w, http.StatusUnprocessableEntity, "image could not be processed")
		return
	}

	created := s.now().UTC()
	falcon := model.Falcon{
		ID:          id,
		NameAr:      in.NameAr,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    s.imageURL(res.RelPath),
		CreatedAt:   &created,
	}
	s.repo.Add(falcon)

	slog.Info("falcon stored", "id", id, "image", res.RelPath, "size", res.Size)
	writeJSON(w, http.StatusCreated, falcon)
}

// imageURL returns the public URL of a stored upload, escaping each path
// segment so client filenames survive as-is.
func (s *Server) imageURL(relPath string) string {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicURL + RouteUploads + "/" + strings.Join(segments, "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
