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

// TrackPickSetter defines the interface for setting a track pick.
type TrackPickSetter interface {
	SetPick(ctx context.Context, userID, albumID uuid.UUID, trackNumber int, trackTitle string) error
}

// TrackPickSetRequest represents the JSON body for setting a track pick
// swagger:model TrackPickSetRequest
type TrackPickSetRequest struct {
	// 1-based track number
	// required: true
	TrackNumber int `json:"track_number"`

	// Track title
	TrackTitle string `json:"track_title"`
}

// TrackPickSetResponse represents a successful track pick
// swagger:model TrackPickSetResponse
type TrackPickSetResponse struct {
	// Success message
	Message string `json:"message"`
}

// TrackPickSetErrorResponse represents an error response for track picks
// swagger:model TrackPickSetErrorResponse
type TrackPickSetErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewTrackPickSetHandler returns an HTTP handler setting the user's
// highlighted track for an album. Setting replaces any previous pick.
// @Summary Set the highlighted track for an album
// @Tags track-picks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param albumID path string true "Album id"
// @Param trackPickSetRequest body handlers.TrackPickSetRequest true "Track pick"
// @Success 200 {object} handlers.TrackPickSetResponse "Pick saved"
// @Failure 400 {object} handlers.TrackPickSetErrorResponse "Invalid track number"
// @Failure 404 {object} handlers.TrackPickSetErrorResponse "Album not found"
// @Router /albums/{albumID}/track-pick [put]
func NewTrackPickSetHandler(svc TrackPickSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		albumID, err := uuid.Parse(chi.URLParam(r, "albumID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrackPickSetErrorResponse{Error: "invalid album id"})
			return
		}

		var req TrackPickSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrackPickSetErrorResponse{Error: "invalid request body"})
			return
		}

		err = svc.SetPick(r.Context(), userID, albumID, req.TrackNumber, req.TrackTitle)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTrackPickInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TrackPickSetErrorResponse{Error: "Track number must be positive"})
			case errors.Is(err, services.ErrAlbumNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrackPickSetErrorResponse{Error: "Album not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrackPickSetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TrackPickSetResponse{Message: "Track pick saved"})
	}
}
