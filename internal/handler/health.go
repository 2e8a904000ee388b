package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/logger"
)

// HealthResponse is the body of the health endpoints
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	BackendMS int64  `json:"backend_ms,omitempty"`
}

// HealthChecker is anything that can check the backend
type HealthChecker interface {
	Ping(ctx context.Context) error
}

const readinessTimeout = 2 * time.Second

// HandleHealthz is the liveness check. It never calls the backend
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz reports ready only while the backend answers its health check
func HandleReadyz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		start := time.Now()
		err := checker.Ping(ctx)
		elapsed := time.Since(start)
		if err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err, "elapsed", elapsed)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  statusUnavailable,
				Message: msgBackendDown,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK, BackendMS: elapsed.Milliseconds()})
	}
}
