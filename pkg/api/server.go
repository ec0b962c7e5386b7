// Package api exposes stored tree documents over HTTP.
//
// The server is a thin layer over a [store.Store] plus the viz renderer:
//
//	POST   /trees            create a document (body: {"name": ..., "trees": [...]})
//	GET    /trees            list documents
//	GET    /trees/{id}       fetch one document
//	PUT    /trees/{id}       replace a document's name and trees
//	DELETE /trees/{id}       remove a document
//	GET    /trees/{id}/dot   Graphviz DOT for the document's forest
//	GET    /trees/{id}/svg   rendered SVG for the document's forest
//
// Errors are returned as {"error": "..."} with conventional status codes.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/treestruct/pkg/store"
	"github.com/matzehuels/treestruct/pkg/treestruct"
	"github.com/matzehuels/treestruct/pkg/viz"
)

// Server routes tree document requests to a backing store.
type Server struct {
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server over the given store.
// A nil logger falls back to log.Default().
func NewServer(s store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	srv := &Server{store: s, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(srv.logRequests)

	r.Route("/trees", func(r chi.Router) {
		r.Get("/", srv.handleList)
		r.Post("/", srv.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", srv.handleGet)
			r.Put("/", srv.handlePut)
			r.Delete("/", srv.handleDelete)
			r.Get("/dot", srv.handleDOT)
			r.Get("/svg", srv.handleSVG)
		})
	})

	srv.router = r
	return srv
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// documentBody is the request shape for create and replace.
type documentBody struct {
	Name  string                 `json:"name"`
	Trees []treestruct.Dict[any] `json:"trees"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body documentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	now := time.Now().UTC()
	doc := &store.Document{
		ID:        uuid.NewString(),
		Name:      body.Name,
		Trees:     body.Trees,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	if docs == nil {
		docs = []*store.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetch(w, r)
	if !ok {
		return
	}
	var body documentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	doc.Name = body.Name
	doc.Trees = body.Trees
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetch(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(s.forestDOT(doc)))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetch(w, r)
	if !ok {
		return
	}
	svg, err := viz.RenderSVG(s.forestDOT(doc))
	if err != nil {
		s.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) forestDOT(doc *store.Document) string {
	return viz.NewForest(doc.Roots(), nil, viz.Options{Name: doc.Name}).DOT()
}

func (s *Server) fetch(w http.ResponseWriter, r *http.Request) (*store.Document, bool) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return nil, false
	}
	if errors.Is(err, store.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "invalid document ID")
		return nil, false
	}
	if err != nil {
		s.serverError(w, err)
		return nil, false
	}
	return doc, true
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
