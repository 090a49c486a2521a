package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/models"
)

// TrackPicksGetter defines the interface for reading a user's picks.
type TrackPicksGetter interface {
	GetPicks(ctx context.Context, userID uuid.UUID) ([]models.TrackPickDB, error)
}

// TrackPicksGetErrorResponse represents an error response for reading picks
// swagger:model TrackPicksGetErrorResponse
type TrackPicksGetErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewTrackPicksGetHandler returns an HTTP handler listing the user's picks.
// @Summary List the authenticated user's track picks
// @Tags track-picks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TrackPickDB "Track picks"
// @Failure 500 {object} handlers.TrackPicksGetErrorResponse "Internal server error"
// @Router /track-picks [get]
func NewTrackPicksGetHandler(svc TrackPicksGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		picks, err := svc.GetPicks(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrackPicksGetErrorResponse{Error: "Internal server error"})
			return
		}

		if picks == nil {
			picks = []models.TrackPickDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(picks)
	}
}
