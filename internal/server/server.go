package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/extraction"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/server/ratelimit"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/session"
)

// maxRequestBody leaves room for multipart framing around the largest upload.
const maxRequestBody = extraction.MaxUploadSize + 1<<20

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	client        *extraction.Client
	store         session.Store
	allowedOrigin string
	uploadLimiter *ratelimit.Limiter
	logger        zerolog.Logger
}

// Config holds server configuration
type Config struct {
	Port int
	// Client talks to the extraction service. Required.
	Client *extraction.Client
	// Store holds parsed sessions; nil means an in-memory store.
	Store session.Store
	// AllowedOrigin is sent as Access-Control-Allow-Origin; empty means "*".
	AllowedOrigin string
	// UploadsPerMinute caps POST /upload per client IP; zero disables it.
	UploadsPerMinute int
	Logger           *zerolog.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("extraction client is required")
	}

	s := &Server{
		client:        cfg.Client,
		store:         cfg.Store,
		allowedOrigin: cfg.AllowedOrigin,
		uploadLimiter: ratelimit.New(cfg.UploadsPerMinute, time.Minute),
		logger:        zerolog.Nop(),
	}
	if s.store == nil {
		s.store = session.NewMemoryStore(session.DefaultTTL)
	}
	if s.allowedOrigin == "" {
		s.allowedOrigin = "*"
	}
	if cfg.Logger != nil {
		s.logger = cfg.Logger.With().Str("component", "server").Logger()
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second, // uploads wait on document parsing
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("POST /upload", s.withRateLimit(s.uploadLimiter, http.HandlerFunc(s.handleUpload)))
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("GET /sessions/{id}/export", s.handleExport)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects requests from clients over the limiter's budget
// with 429 and a Retry-After header.
func (s *Server) withRateLimit(limiter *ratelimit.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := limiter.Allow(clientID(r))
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !info.Allowed {
			retry := int(math.Ceil(info.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
			zerolog.Ctx(r.Context()).Warn().Str("client", clientID(r)).Int("retry_after", retry).Msg("rate limit exceeded")
			s.errorResponse(w, http.StatusTooManyRequests, "Too many uploads. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller by the IP in RemoteAddr.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(s.logger.WithContext(r.Context())))

		event := s.logger.Info()
		if rec.status >= http.StatusInternalServerError {
			event = s.logger.Error()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request completed")
	})
}

// handleHealth reports this server's status and whether the extraction
// service is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	reachable := s.client.Health(r.Context())
	if !reachable {
		status = "degraded"
	}

	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:            status,
		ExtractionService: reachable,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to a status and writes it as an error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	s.errorResponse(w, status, errorMessage(err))
}
