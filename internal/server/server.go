// Package server provides the HTTP REST API for the rating core.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/WillyEverGreen/gigbridge/internal/extraction"
	"github.com/WillyEverGreen/gigbridge/internal/ledger"
	"github.com/WillyEverGreen/gigbridge/internal/server/middleware"
	"github.com/WillyEverGreen/gigbridge/internal/server/ratelimit"
	"github.com/WillyEverGreen/gigbridge/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer     *http.Server
	ledger         *ledger.Service
	extractor      extraction.Client
	db             *store.PostgresStore
	validate       *validator.Validate
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	topSkillsLimit int
}

// Config holds server configuration.
type Config struct {
	Port           int
	DatabaseURL    string
	ExtractorURL   string
	JWTSecret      string // empty disables bearer-token verification (dev mode)
	TopSkillsLimit int    // default limit for top-skills queries, 0 means 3
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	// Connect to database
	db, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{
		db:             db,
		ledger:         ledger.NewService(db),
		extractor:      extraction.NewHTTPClient(cfg.ExtractorURL, nil),
		validate:       validator.New(),
		topSkillsLimit: cfg.TopSkillsLimit,
	}
	if s.topSkillsLimit <= 0 {
		s.topSkillsLimit = 3
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.DefaultConfig())

	if cfg.JWTSecret != "" {
		s.jwtService = NewJWTService(cfg.JWTSecret)
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // extraction calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /catalog/skills", s.handleCatalogSkills)

	// Analysis endpoints
	mux.HandleFunc("POST /resumes/analyze", s.handleAnalyzeResume)
	mux.Handle("POST /resumes/process", s.protected(http.HandlerFunc(s.handleProcessResume)))

	// Rating ledger endpoints
	mux.Handle("POST /users/{id}/ratings/resume-import", s.protected(http.HandlerFunc(s.handleResumeImport)))
	mux.Handle("POST /users/{id}/ratings/project-success", s.protected(http.HandlerFunc(s.handleProjectSuccess)))
	mux.Handle("POST /users/{id}/ratings/project-failure", s.protected(http.HandlerFunc(s.handleProjectFailure)))
	mux.Handle("POST /users/{id}/ratings/project-cancellation", s.protected(http.HandlerFunc(s.handleProjectCancellation)))
	mux.HandleFunc("GET /users/{id}/ratings", s.handleGetRatings)
	mux.HandleFunc("GET /users/{id}/ratings/stats", s.handleGetStats)
	mux.HandleFunc("GET /users/{id}/ratings/top-skills", s.handleGetTopSkills)
	mux.Handle("DELETE /users/{id}/ratings/history", s.protected(http.HandlerFunc(s.handleClearHistory)))
	mux.Handle("DELETE /users/{id}/ratings", s.protected(http.HandlerFunc(s.handleDeleteRatings)))

	return mux
}

// protected wraps a handler with bearer-token verification when a JWT secret
// is configured. Tokens are issued by the external identity provider; this
// service only verifies them.
func (s *Server) protected(next http.Handler) http.Handler {
	if s.jwtService == nil {
		return next
	}
	return middleware.AuthMiddleware(s.jwtService)(next)
}

// Start begins listening for requests.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path)
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			log.Printf("[rate-limit] client %s throttled on %s", clientID, r.URL.Path)
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate_limit_exceeded",
				"message":     "Rate limit exceeded. Please try again later.",
				"retry_after": int(info.RetryAfter.Seconds()),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
