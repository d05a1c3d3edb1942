// Package server implements the document extraction HTTP API behind
// `orgchart serve`.
//
// Routes:
//
//	GET  /        service info
//	GET  /health  {"status":"healthy"}
//	POST /upload  multipart field "file" → {"success":true,"companies":[...],"extracted_text":"..."}
//
// Failures answer {"error":"..."} with a 4xx or 5xx status.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/orgchart/pkg/buildinfo"
	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/extract"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	svc    *extract.Service
	logger *log.Logger
	cfg    Config
}

// New creates and configures the HTTP server.
func New(svc *extract.Service, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		svc:    svc,
		logger: logger,
		cfg:    cfg.withDefaults(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(CORS(s.cfg.CORSOrigins))

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Post("/upload", s.handleUpload)

	s.router = r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", "http://"+srv.Addr, "model", s.svc.HasModel(), "version", buildinfo.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewService builds the extraction service from cfg. Without an API key
// every upload is answered with sample data; without a Redis address model
// results are not cached. The returned close function releases the cache.
func NewService(ctx context.Context, cfg Config, logger *log.Logger) (*extract.Service, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	var model extract.Model
	if cfg.OpenAIKey != "" {
		model = extract.NewOpenAIModel(extract.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
	} else {
		logger.Warn("OPENAI_API_KEY not set, uploads will return sample data")
	}

	var c cache.Cache = cache.NewNullCache()
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("caching extractions in redis", "addr", cfg.RedisAddr)
		c = rc
	}

	svc := extract.NewService(model,
		extract.WithCache(c, cache.NewScopedKeyer(nil, cfg.CachePrefix)),
		extract.WithServiceLogger(logger))
	return svc, c.Close, nil
}
