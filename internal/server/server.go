// Package server implements the preview HTTP server: read-only endpoints that
// list stored documents and serve their compiled previews.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SharadhNaidu/mailcanvas/pkg/cache"
	"github.com/SharadhNaidu/mailcanvas/pkg/export"
	"github.com/SharadhNaidu/mailcanvas/pkg/outline"
	"github.com/SharadhNaidu/mailcanvas/pkg/store"
)

// previewTTL bounds how long compiled previews are served from cache.
const previewTTL = time.Hour

// Server serves document previews over HTTP.
type Server struct {
	store     store.Store
	artifacts cache.Cache
	logger    *log.Logger
}

// New creates a preview server over the given document store and artifact
// cache. A nil logger disables logging.
func New(st store.Store, artifacts cache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{store: st, artifacts: artifacts, logger: logger}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/documents", s.handleList)
	r.Get("/documents/{name}", s.handleDocument)
	r.Get("/documents/{name}/preview", s.handlePreview)
	r.Get("/documents/{name}/warnings", s.handleWarnings)
	r.Get("/documents/{name}/outline.svg", s.handleOutline)

	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.serveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"documents": names})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.serveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc.ToFile(name))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	res, err := s.compile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.serveError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(res.HTML))
}

func (s *Server) handleWarnings(w http.ResponseWriter, r *http.Request) {
	res, err := s.compile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.serveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"warnings":    res.Warnings,
		"diagnostics": res.Diagnostics,
	})
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.serveError(w, err)
		return
	}
	svg, err := outline.RenderSVG(r.Context(), outline.ToDOT(doc, outline.Options{}))
	if err != nil {
		s.serveError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// compile loads a document and compiles it to HTML, consulting the artifact
// cache first. Cache failures are logged and treated as misses.
func (s *Server) compile(ctx context.Context, name string) (export.Result, error) {
	doc, err := s.store.Get(ctx, name)
	if err != nil {
		return export.Result{}, err
	}

	key := cache.ArtifactKey(export.ContentHash(doc), "html")
	if data, ok, err := s.artifacts.Get(ctx, key); err == nil && ok {
		var res export.Result
		if err := json.Unmarshal(data, &res); err == nil {
			return res, nil
		}
	}

	res, err := export.Export(ctx, doc, export.WithHTMLCompiler(export.Basic{}))
	if err != nil {
		return export.Result{}, err
	}
	if data, err := json.Marshal(res); err == nil {
		if err := s.artifacts.Set(ctx, key, data, previewTTL); err != nil {
			s.logger.Debug("artifact cache write failed", "err", err)
		}
	}
	return res, nil
}

func (s *Server) serveError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	} else if errors.Is(err, store.ErrInvalidName) {
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
