package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

// ReleasesGetter defines the interface for reading this week's releases.
type ReleasesGetter interface {
	Current(ctx context.Context) ([]models.ReleaseDB, error)
}

// ReleasesErrorResponse represents an error response for weekly releases
// swagger:model ReleasesErrorResponse
type ReleasesErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewReleasesHandler returns an HTTP handler serving this week's new
// releases.
// @Summary Get this week's new releases
// @Tags releases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ReleaseDB "Weekly releases"
// @Failure 500 {object} handlers.ReleasesErrorResponse "Internal server error"
// @Router /releases [get]
func NewReleasesHandler(svc ReleasesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		releases, err := svc.Current(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReleasesErrorResponse{Error: "Internal server error"})
			return
		}

		if releases == nil {
			releases = []models.ReleaseDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(releases)
	}
}
