// Package api exposes graph conversions over HTTP.
//
// The server is a thin collaborator around the graph packages: every
// endpoint accepts a text-encoded graph in the request body and returns a
// derived representation. Nothing is stored server-side.
//
//	GET  /healthz   liveness probe
//	POST /v1/stats  JSON summary (counts, degrees, sources, sinks)
//	POST /v1/fmt    canonicalized text encoding
//	POST /v1/dot    Graphviz DOT
//	POST /v1/svg    rendered SVG
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/graftlabs/graft/pkg/graph"
	"github.com/graftlabs/graft/pkg/graph/dot"
	"github.com/graftlabs/graft/pkg/graph/text"
)

// maxBodyBytes caps request bodies; graphs beyond this are rejected.
const maxBodyBytes = 16 << 20

// Server handles graph conversion requests.
type Server struct {
	logger *log.Logger
}

// New creates a server logging through logger.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{logger: logger}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/stats", s.handleStats)
		r.Post("/fmt", s.handleFmt)
		r.Post("/dot", s.handleDOT)
		r.Post("/svg", s.handleSVG)
	})
	return r
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

// readGraph decodes the request body, writing the error response itself on
// failure. The bool reports whether the caller should continue.
func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (*graph.Graph[string, string], bool) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	g, err := text.Read(body, text.Strings())
	if err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err)
		return nil, false
	}
	return g, true
}

// statsResponse is the JSON shape of POST /v1/stats.
type statsResponse struct {
	Vertices int              `json:"vertices"`
	Edges    int              `json:"edges"`
	Sources  []graph.VertexID `json:"sources"`
	Sinks    []graph.VertexID `json:"sinks"`
	MaxOut   int              `json:"max_out_degree"`
	MaxIn    int              `json:"max_in_degree"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	g, ok := s.readGraph(w, r)
	if !ok {
		return
	}
	resp := statsResponse{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Sources:  g.Sources(),
		Sinks:    g.Sinks(),
	}
	for v := range g.Vertices() {
		resp.MaxOut = max(resp.MaxOut, g.OutDegree(v.ID()))
		resp.MaxIn = max(resp.MaxIn, g.InDegree(v.ID()))
	}
	if resp.Sources == nil {
		resp.Sources = []graph.VertexID{}
	}
	if resp.Sinks == nil {
		resp.Sinks = []graph.VertexID{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleFmt(w http.ResponseWriter, r *http.Request) {
	g, ok := s.readGraph(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := text.Write(w, g, text.Strings()); err != nil {
		s.logger.Error("write canonical form", "err", err)
	}
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	g, ok := s.readGraph(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	fmt.Fprint(w, dot.ToDOT(g, dot.Strings()))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	g, ok := s.readGraph(w, r)
	if !ok {
		return
	}
	svg, err := dot.RenderSVG(r.Context(), dot.ToDOT(g, dot.Strings()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
