package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/services"
)

// TrackPickClearer defines the interface for clearing a track pick.
type TrackPickClearer interface {
	ClearPick(ctx context.Context, userID, albumID uuid.UUID) error
}

// TrackPickClearResponse represents a successful pick removal
// swagger:model TrackPickClearResponse
type TrackPickClearResponse struct {
	// Success message
	Message string `json:"message"`
}

// TrackPickClearErrorResponse represents an error response for pick removal
// swagger:model TrackPickClearErrorResponse
type TrackPickClearErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewTrackPickClearHandler returns an HTTP handler clearing the user's
// pick for an album.
// @Summary Clear the highlighted track for an album
// @Tags track-picks
// @Produce json
// @Security BearerAuth
// @Param albumID path string true "Album id"
// @Success 200 {object} handlers.TrackPickClearResponse "Pick cleared"
// @Failure 404 {object} handlers.TrackPickClearErrorResponse "Pick not found"
// @Router /albums/{albumID}/track-pick [delete]
func NewTrackPickClearHandler(svc TrackPickClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		albumID, err := uuid.Parse(chi.URLParam(r, "albumID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrackPickClearErrorResponse{Error: "invalid album id"})
			return
		}

		err = svc.ClearPick(r.Context(), userID, albumID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTrackPickNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrackPickClearErrorResponse{Error: "Track pick not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrackPickClearErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TrackPickClearResponse{Message: "Track pick cleared"})
	}
}
