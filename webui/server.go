// Package webui serves a small browser frontend over the document catalog:
// a filterable list, per-document detail, and an upload form that runs new
// files through the pipeline immediately.
package webui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hazyhaar/docroute/catalog"
	"github.com/hazyhaar/docroute/docpipe"
	"github.com/hazyhaar/docroute/emit"
	"github.com/hazyhaar/docroute/pipeline"
	"github.com/hazyhaar/docroute/shield"
)

// Config configures the web server.
type Config struct {
	// Store is the document catalog (required).
	Store *catalog.Store

	// Writer, when set, also appends uploaded documents to the batch
	// outputs (summary.csv, route files).
	Writer *emit.Writer

	// UploadDir receives uploaded files (default: os.TempDir()/docroute-uploads).
	UploadDir string

	// MaxUploadSize bounds multipart uploads (default: 50 MB).
	MaxUploadSize int64

	// MaxSentences caps summaries for uploaded documents (default: 5).
	MaxSentences int

	// Logger for request-scope messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.UploadDir == "" {
		c.UploadDir = filepath.Join(os.TempDir(), "docroute-uploads")
	}
	if c.MaxUploadSize <= 0 {
		c.MaxUploadSize = 50 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Server handles the web UI routes.
type Server struct {
	cfg    Config
	pipe   *docpipe.Pipeline
	proc   *pipeline.Processor
	store  *catalog.Store
	logger *slog.Logger
}

// NewServer builds a Server and its processing pipeline.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("webui: catalog store is required")
	}
	cfg.defaults()
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("webui: create upload dir: %w", err)
	}

	pipe := docpipe.New(docpipe.Config{Logger: cfg.Logger})
	proc := pipeline.NewProcessor(pipe, pipeline.Config{
		MaxSentences: cfg.MaxSentences,
		Logger:       cfg.Logger,
	})

	return &Server{
		cfg:    cfg,
		pipe:   pipe,
		proc:   proc,
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Router returns the chi router with all UI routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(shield.SecurityHeaders(shield.DefaultHeaders()))
	r.Use(shield.HeadToGet)

	r.Get("/", s.handleIndex)
	r.Post("/upload", s.handleUpload)
	r.Get("/detail/{hash}", s.handleDetail)
	r.Get("/healthz", s.handleHealthz)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ListFilter{
		Query:    q.Get("q"),
		Tag:      q.Get("tag"),
		Language: q.Get("lang"),
	}

	docs, err := s.store.List(r.Context(), filter)
	if err != nil {
		s.serverError(w, r, "list documents", err)
		return
	}

	data := indexData{
		Docs:  docs,
		Query: filter.Query,
		Tag:   filter.Tag,
		Lang:  filter.Language,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		http.Error(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		http.Error(w, "form field 'document' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !docpipe.Supported(header.Filename) {
		http.Error(w, "unsupported file type (want .pdf, .docx, .txt)", http.StatusBadRequest)
		return
	}

	dst := filepath.Join(s.cfg.UploadDir, emit.SanitizeFilename(header.Filename))
	out, err := os.Create(dst)
	if err != nil {
		s.serverError(w, r, "store upload", err)
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		s.serverError(w, r, "store upload", err)
		return
	}
	if err := out.Close(); err != nil {
		s.serverError(w, r, "store upload", err)
		return
	}

	raw, err := s.pipe.Read(dst)
	if err != nil {
		http.Error(w, fmt.Sprintf("cannot read document: %v", err), http.StatusBadRequest)
		return
	}
	rec, err := s.proc.Process(r.Context(), raw)
	if err != nil {
		var extErr *docpipe.ExtractionError
		if errors.As(err, &extErr) {
			http.Error(w, fmt.Sprintf("cannot extract text: %v", err), http.StatusUnprocessableEntity)
			return
		}
		s.serverError(w, r, "process upload", err)
		return
	}

	if _, err := s.store.Put(r.Context(), rec); err != nil {
		s.serverError(w, r, "catalog upload", err)
		return
	}
	if s.cfg.Writer != nil {
		if err := s.cfg.Writer.Append(rec); err != nil {
			s.serverError(w, r, "emit upload", err)
			return
		}
	}

	s.logger.Info("document uploaded",
		"file", header.Filename,
		"hash", rec.ContentHash,
		"tags", rec.Tags)
	http.Redirect(w, r, "/detail/"+rec.ContentHash, http.StatusSeeOther)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")
	doc, err := s.store.GetByHash(r.Context(), hash)
	if errors.Is(err, catalog.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, "load document", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := detailTmpl.Execute(w, doc); err != nil {
		s.logger.Error("render detail", "error", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.Count(r.Context()); err != nil {
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op, "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
