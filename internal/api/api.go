// Package api exposes the embedding pipeline over HTTP.
//
// The handler mirrors the CLI exactly: both call pipeline.Runner, so an
// embedding requested over HTTP produces the same grid, report, and
// artifacts as the same problem run through the embed command.
//
// # Endpoints
//
//	POST /v1/embed      embed a problem, optionally validate and render
//	POST /v1/validate   check a grid against a problem
//	GET  /healthz       liveness probe
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridatlas/gridatlas/pkg/buildinfo"
)

// maxBodyBytes bounds request bodies. Problems are tiny; a megabyte is
// generous even for dense edge lists at the size limits.
const maxBodyBytes = 1 << 20

// Handler serves the HTTP API.
type Handler struct {
	logger      *log.Logger
	positionCap int
	router      chi.Router
}

// NewHandler builds the API handler. A nil logger selects log.Default();
// a zero positionCap keeps the placer default.
func NewHandler(logger *log.Logger, positionCap int) *Handler {
	if logger == nil {
		logger = log.Default()
	}

	h := &Handler{logger: logger, positionCap: positionCap}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", h.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/embed", h.handleEmbed)
		r.Post("/validate", h.handleValidate)
	})

	h.router = r
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// logRequests logs one line per request with the chi request ID.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody decodes a bounded JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
