// Package server hosts model generation over HTTP+JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ChicagoDave/houseplanner/internal/config"
	"github.com/ChicagoDave/houseplanner/pkg/cache"
	"github.com/ChicagoDave/houseplanner/pkg/cost"
	"github.com/ChicagoDave/houseplanner/pkg/model"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/scene2d"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// ModelResponse is the body of a model generation response.
type ModelResponse struct {
	Key    string              `json:"key"`
	Cached bool                `json:"cached"`
	Model  model.BuildingModel `json:"model"`
	Stats  model.Stats         `json:"stats"`
	Cost   *cost.Report        `json:"cost"`
	Report *validation.Report  `json:"report"`
}

// Server generates building models on request.
type Server struct {
	cfg    config.Config
	cache  cache.Cache
	logger *log.Logger
}

// New creates a server. A nil cache disables caching and a nil logger uses
// log.Default(). A non-positive body limit falls back to 1 MiB.
func New(cfg config.Config, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	return &Server{cfg: cfg, cache: c, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/models", s.handleGenerate)
		r.Get("/models/{key}", s.handleGetModel)
		r.Get("/models/{key}/plan", s.handleGetPlanView)
		r.Post("/validate", s.handleValidate)
		r.Get("/demo", s.handleDemo)
	})
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("houseplanner server starting", "addr", s.cfg.Addr, "cache", s.cfg.CacheBackend)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	p, err := s.decodePlan(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	key := cache.ModelKey(p)
	var resp ModelResponse
	switch err := cache.Load(ctx, s.cache, key, &resp); {
	case err == nil:
		resp.Cached = true
		s.writeJSON(w, http.StatusOK, resp)
		return
	case !errors.Is(err, cache.ErrCacheMiss):
		s.logger.Warn("cache load failed", "key", key, "err", err)
	}

	m, report := model.Generate(p)
	resp = ModelResponse{
		Key:    key,
		Model:  m,
		Stats:  m.Stats(),
		Cost:   cost.Estimate(&m, cost.DefaultFinancing()),
		Report: report,
	}
	if err := cache.Store(ctx, s.cache, key, resp, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache store failed", "key", key, "err", err)
	}
	s.logger.Debug("generated model", "key", key, "walls", len(m.Walls), "warnings", len(report.Warnings))
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	if resp, ok := s.loadCached(w, r); ok {
		resp.Cached = true
		s.writeJSON(w, http.StatusOK, resp)
	}
}

// handleGetPlanView returns the top-down plan of a cached model.
func (s *Server) handleGetPlanView(w http.ResponseWriter, r *http.Request) {
	if resp, ok := s.loadCached(w, r); ok {
		s.writeJSON(w, http.StatusOK, scene2d.Assemble2D(&resp.Model))
	}
}

// loadCached looks up the model named by the {key} route parameter. On a
// miss or cache failure it writes the error response and returns false.
func (s *Server) loadCached(w http.ResponseWriter, r *http.Request) (ModelResponse, bool) {
	key := chi.URLParam(r, "key")
	var resp ModelResponse
	err := cache.Load(r.Context(), s.cache, key, &resp)
	switch {
	case errors.Is(err, cache.ErrCacheMiss):
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("model %q not found", key))
		return resp, false
	case err != nil:
		s.logger.Error("cache load failed", "key", key, "err", err)
		s.writeError(w, http.StatusInternalServerError, "cache unavailable")
		return resp, false
	}
	return resp, true
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	p, err := s.decodePlan(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, model.Check(p))
}

func (s *Server) handleDemo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, plan.Demo())
}

func (s *Server) decodePlan(w http.ResponseWriter, r *http.Request) (*plan.PlanDescription, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	p, err := plan.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return p, nil
}

// requestID attaches a request id, reusing the caller's if present.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", requestIDFromContext(r.Context()),
		)
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// writeJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of a truncated 200.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding response", "err", err)
		status = http.StatusInternalServerError
		data, _ = json.Marshal(map[string]string{"error": "response could not be encoded"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
