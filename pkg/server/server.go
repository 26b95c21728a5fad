package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/NVIDIA/datacontract/pkg/logging"
	"github.com/NVIDIA/datacontract/pkg/validator"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const name = "datacontract-api"

// version is injected at build time via ldflags.
var version = "dev"

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// Server hosts the validation HTTP API.
type Server struct {
	cfg       *Config
	validator *validator.Validator
	limiter   *rate.Limiter
	httpSrv   *http.Server

	mu    sync.RWMutex
	ready bool
}

// Option configures a Server.
type Option func(*Server)

// WithValidator replaces the default validator instance.
func WithValidator(v *validator.Validator) Option {
	return func(s *Server) {
		s.validator = v
	}
}

// New builds a Server from cfg; a nil cfg gets defaults.
func New(cfg *Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logging.SetLevel(cfg.LogLevel)

	s := &Server{
		cfg:       cfg,
		validator: validator.New(validator.WithVersion(version)),
		limiter:   rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. Shutdown is graceful within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", s.httpSrv.Addr, "version", version)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.setReady(true)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.setReady(false)
	slog.Info("shutting down server", "timeout", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

// withMiddleware wraps a handler with request-ID assignment, rate limiting
// and request logging. Applied to API routes, not system endpoints.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))

		if !s.limiter.Allow() {
			WriteError(w, r, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
			return
		}

		start := time.Now()
		next(w, r)

		slog.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"remote_addr", r.RemoteAddr,
			"duration", time.Since(start),
		)
	}
}
