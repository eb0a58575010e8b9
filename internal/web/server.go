// Package web serves the verification form, a JSON endpoint and the MCP tool.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ppiankov/jorfcheck/internal/model"
	"github.com/ppiankov/jorfcheck/internal/pipeline"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

// Verifier runs one verification
type Verifier interface {
	Verify(ctx context.Context, surname, givenName string, year int) *model.Verification
}

// Server exposes a Verifier over HTTP
type Server struct {
	verifier Verifier
	gazette  model.GazetteConfig
	logger   *slog.Logger
}

// NewServer creates a server for verifier. Allowed years come from gazette.
func NewServer(verifier Verifier, gazette model.GazetteConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{verifier: verifier, gazette: gazette, logger: logger}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("GET /api/verify", s.handleAPIVerify)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

type pageMessages struct {
	Found      string
	NotFound   string
	Excerpt    string
	SourceLink string
}

type pageData struct {
	Years     []int
	Year      int
	Surname   string
	GivenName string
	Warning   string
	Result    *model.Verification
	Messages  pageMessages
}

func (s *Server) newPage() pageData {
	page := pageData{
		Years: s.gazette.Years,
		Messages: pageMessages{
			Found:      pipeline.MsgFound,
			NotFound:   pipeline.MsgNotFound,
			Excerpt:    pipeline.LabelExcerpt,
			SourceLink: pipeline.LabelSourceLink,
		},
	}
	if len(page.Years) > 0 {
		page.Year = page.Years[0]
	}
	return page
}

// --- form ---

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, s.newPage())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	page := s.newPage()
	page.Surname = r.PostFormValue("surname")
	page.GivenName = r.PostFormValue("given_name")
	if year, err := strconv.Atoi(r.PostFormValue("year")); err == nil {
		page.Year = year
	}

	req, err := pipeline.Request{Surname: page.Surname, GivenName: page.GivenName, Year: page.Year}.Clean(s.gazette)
	switch {
	case errors.Is(err, pipeline.ErrMissingNames):
		page.Warning = pipeline.MsgMissingNames
		s.renderPage(w, http.StatusOK, page)
		return
	case err != nil:
		page.Warning = err.Error()
		s.renderPage(w, http.StatusBadRequest, page)
		return
	}

	page.Result = s.verify(r.Context(), req)
	s.renderPage(w, http.StatusOK, page)
}

func (s *Server) renderPage(w http.ResponseWriter, code int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := indexTemplate.Execute(w, page); err != nil {
		s.logger.Error("render page", "error", err)
	}
}

// --- JSON ---

func (s *Server) handleAPIVerify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}

	req, err := pipeline.Request{Surname: q.Get("surname"), GivenName: q.Get("given_name"), Year: year}.Clean(s.gazette)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.verify(r.Context(), req))
}

// --- health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- helpers ---

func (s *Server) verify(ctx context.Context, req pipeline.Request) *model.Verification {
	v := s.verifier.Verify(ctx, req.Surname, req.GivenName, req.Year)
	s.logger.Info("verification",
		"year", v.Year,
		"found", v.Found,
		"outcome", v.Outcome,
		"candidates", len(v.Candidates),
		"duration", v.Duration,
	)
	return v
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
