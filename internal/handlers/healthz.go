package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/esophai/internal/logger"
)

//go:generate mockgen -source=healthz.go -destination=healthz_mock.go -package=handlers

// Pinger checks that a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is returned by the health endpoint
// swagger:model HealthResponse
type HealthResponse struct {
	// Status
	// default: ok
	Status string `json:"status"`
}

// NewHealthzHandler reports whether the database answers.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Failure 503 {object} handlers.HealthResponse "Database unavailable"
// @Router /healthz [get]
func NewHealthzHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(HealthResponse{Status: "unavailable"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}
