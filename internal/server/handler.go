// Package server provides the HTTP API for the warehouse layout engine.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/buildinfo"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/observability"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/pipeline"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// Handler provides HTTP handlers for the API.
type Handler struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewHandler creates a new API handler around the given pipeline runner.
func NewHandler(runner *pipeline.Runner, logger *log.Logger) *Handler {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		runner: runner,
		logger: logger,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)
	r.Use(h.observe)

	// Health endpoints
	r.Get("/healthz", h.handleHealth)
	r.Get("/version", h.handleVersion)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", h.handleComputeLayout)
		r.Get("/layout/{id}", h.handleGetLayout)
		r.Post("/validate", h.handleValidate)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// observe emits request and response events to the registered HTTP hooks.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// =============================================================================
// Health Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, VersionResponse{
		Version: buildinfo.Version,
		Commit:  buildinfo.Commit,
		Date:    buildinfo.Date,
	})
}

// =============================================================================
// Layout Handlers
// =============================================================================

func (h *Handler) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	result, err := h.runner.Execute(r.Context(), pipeline.Options{
		Config:  req.Config,
		Refresh: req.Refresh,
		Logger:  h.logger,
	})
	if err != nil {
		var verr *warehouse.ValidationError
		if errors.As(err, &verr) {
			h.writeJSON(w, http.StatusUnprocessableEntity, ValidationFailureResponse{Errors: verr.Errors})
			return
		}
		h.logger.Error("layout computation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "layout computation failed", "internal_error")
		return
	}

	resp := LayoutResponse{
		LayoutID:   uuid.NewString(),
		ConfigHash: result.ConfigHash,
		Cached:     result.CacheInfo.LayoutHit,
		Warnings:   result.Warnings,
		Tree:       result.Tree,
	}
	h.storeResult(r, resp)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	key := h.runner.Keyer.ResultKey(id)
	data, hit, err := h.runner.Cache.Get(r.Context(), key)
	if err != nil {
		h.logger.Error("result lookup failed", "layout_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "result lookup failed", "internal_error")
		return
	}
	if !hit {
		h.writeError(w, http.StatusNotFound, "layout not found", "not_found")
		return
	}

	// Stored results are already serialized LayoutResponse bodies.
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	errs := warehouse.Validate(req.Config)
	if errs == nil {
		errs = []warehouse.ConfigError{}
	}
	h.writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// storeResult keeps the serialized response retrievable by layout ID for
// the result TTL.
func (h *Handler) storeResult(r *http.Request, resp LayoutResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key := h.runner.Keyer.ResultKey(resp.LayoutID)
	if err := h.runner.Cache.Set(r.Context(), key, data, cache.ResultTTL); err != nil {
		h.logger.Warn("failed to store layout result", "layout_id", resp.LayoutID, "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
