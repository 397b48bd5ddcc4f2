package server

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/config"
)

//go:embed templates/*
var templates embed.FS

// Server handles the browser UI and the review API.
type Server struct {
	cfg  config.Config
	tmpl *template.Template
}

// New creates a server from the given configuration.
func New(cfg config.Config) (*Server, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Server{cfg: cfg, tmpl: tmpl}, nil
}

// Handler returns the full route table wrapped in the recover middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/review", s.handleReview)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return recoverMiddleware(mux)
}

// ListenAndServe runs the server on the configured address until it fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	log.Printf("critique listening on http://%s", s.cfg.Addr)
	return srv.ListenAndServe()
}

// recoverMiddleware converts handler panics into a generic 500 response.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type indexData struct {
	Languages []analyzer.Language
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := s.tmpl.Execute(w, indexData{Languages: analyzer.Supported}); err != nil {
		log.Printf("rendering index: %v", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
