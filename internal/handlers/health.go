package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the service health
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting service health. It
// pings the database with a short timeout.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service healthy"
// @Failure 503 {object} handlers.HealthResponse "Service unhealthy"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(HealthResponse{Status: "unavailable"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}
