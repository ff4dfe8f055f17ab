// Package api provides the HTTP server for Striker. It exposes the
// progression engine's query and mutation surfaces to the app's UI.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strikerhq/striker/internal/app/progress"
	"github.com/strikerhq/striker/internal/domain"
	"github.com/strikerhq/striker/internal/health"
)

// Server is the Striker HTTP API server.
type Server struct {
	store          *progress.Store
	catalog        domain.Catalog
	checker        *health.Checker
	corsOrigins    []string
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(store *progress.Store, catalog domain.Catalog) *Server {
	return &Server{store: store, catalog: catalog}
}

// SetHealthChecker attaches the daemon's health checker so /health can
// report per-probe detail.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// SetCORSOrigins restricts CORS to the given origins. An empty list or
// a "*" entry allows any origin.
func (s *Server) SetCORSOrigins(origins []string) { s.corsOrigins = origins }

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// Query surface
		r.Get("/progress", s.handleProgress)
		r.Get("/skills", s.handleAllSkills)
		r.Get("/skills/{skill}", s.handleSkill)
		r.Get("/skills/{skill}/levels/{level}", s.handleSkillLevel)
		r.Get("/workout/today", s.handleDailyWorkout)
		r.Get("/drills", s.handleListDrills)
		r.Get("/programs", s.handleListPrograms)
		r.Get("/programs/enrolled", s.handleEnrolledPrograms)

		// Mutation surface
		r.Post("/drills/{id}/complete", s.handleCompleteDrill)
		r.Post("/workouts/complete", s.handleCompleteWorkout)
		r.Post("/programs/{id}/enroll", s.handleEnroll)
		r.Delete("/programs/{id}/enroll", s.handleUnenroll)
		r.Post("/progress/reset-week", s.handleResetWeek)
		r.Post("/progress/reset", s.handleResetAll)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleHealth reports daemon liveness, including per-probe detail when
// a health checker is attached.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
		return
	}
	status := "ok"
	code := http.StatusOK
	if !s.checker.IsHealthy() {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": s.checker.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local app frontend,
// honoring the configured origin list.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.allowOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowOrigin resolves the Allow-Origin value for a request origin.
// Returns "" when the origin is not allowed.
func (s *Server) allowOrigin(origin string) string {
	if len(s.corsOrigins) == 0 {
		return "*"
	}
	for _, o := range s.corsOrigins {
		if o == "*" {
			return "*"
		}
		if o == origin && origin != "" {
			return origin
		}
	}
	return ""
}
