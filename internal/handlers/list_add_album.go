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
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

// AlbumResolver resolves submitted metadata to an album id.
type AlbumResolver interface {
	GetOrCreate(ctx context.Context, album models.AlbumDB) (uuid.UUID, error)
}

// ListAlbumAdder defines the interface for appending an album to a list.
type ListAlbumAdder interface {
	AddAlbum(ctx context.Context, userID, listID, albumID uuid.UUID, note string) (*models.ListItemDB, error)
}

// ListAddAlbumRequest represents the JSON body for adding an album to a list.
// Either album_id or artist+title must be provided.
// swagger:model ListAddAlbumRequest
type ListAddAlbumRequest struct {
	// Existing album id, when known
	AlbumID string `json:"album_id"`

	// Artist name, when submitting metadata
	Artist string `json:"artist"`

	// Album title, when submitting metadata
	Title string `json:"title"`

	// Release date
	ReleaseDate string `json:"release_date"`

	// Cover art URL
	CoverURL string `json:"cover_url"`

	// Spotify album id
	SpotifyID string `json:"spotify_id"`

	// Optional note shown next to the item
	Note string `json:"note"`
}

// ListAddAlbumResponse represents a successful item addition
// swagger:model ListAddAlbumResponse
type ListAddAlbumResponse struct {
	Item models.ListItemDB `json:"item"`
}

// ListAddAlbumErrorResponse represents an error response for item addition
// swagger:model ListAddAlbumErrorResponse
type ListAddAlbumErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListAddAlbumHandler returns an HTTP handler appending an album to a list.
// @Summary Add an album to a list
// @Description Appends an album at the end of the list. Accepts an existing album id or raw metadata, which is stored first.
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List id"
// @Param listAddAlbumRequest body handlers.ListAddAlbumRequest true "Album to add"
// @Success 201 {object} handlers.ListAddAlbumResponse "Item added"
// @Failure 400 {object} handlers.ListAddAlbumErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ListAddAlbumErrorResponse "List does not belong to user"
// @Failure 404 {object} handlers.ListAddAlbumErrorResponse "List not found"
// @Router /lists/{listID}/albums [post]
func NewListAddAlbumHandler(albums AlbumResolver, lists ListAlbumAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		listID, err := uuid.Parse(chi.URLParam(r, "listID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "invalid list id"})
			return
		}

		var req ListAddAlbumRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "invalid request body"})
			return
		}

		var albumID uuid.UUID
		if req.AlbumID != "" {
			albumID, err = uuid.Parse(req.AlbumID)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "invalid album id"})
				return
			}
		} else {
			albumID, err = albums.GetOrCreate(r.Context(), models.AlbumDB{
				Artist:      req.Artist,
				Title:       req.Title,
				ReleaseDate: req.ReleaseDate,
				CoverURL:    req.CoverURL,
				SpotifyID:   req.SpotifyID,
				Source:      models.SourceManual,
			})
			if err != nil {
				if errors.Is(err, services.ErrAlbumInvalid) {
					w.WriteHeader(http.StatusBadRequest)
					json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "artist and title are required"})
					return
				}
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "Internal server error"})
				return
			}
		}

		item, err := lists.AddAlbum(r.Context(), userID, listID, albumID, req.Note)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "List not found"})
			case errors.Is(err, services.ErrListNotOwned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "List does not belong to user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListAddAlbumErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ListAddAlbumResponse{Item: *item})
	}
}
