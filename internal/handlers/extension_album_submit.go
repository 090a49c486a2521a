package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

// ExtensionAlbumSubmitRequest carries metadata scraped by the browser
// extension. The optional list_id appends the album to that list.
// swagger:model ExtensionAlbumSubmitRequest
type ExtensionAlbumSubmitRequest struct {
	// Artist name
	// required: true
	Artist string `json:"artist"`

	// Album title
	// required: true
	Title string `json:"title"`

	// Release date
	ReleaseDate string `json:"release_date"`

	// Cover art URL
	CoverURL string `json:"cover_url"`

	// Target list id, optional
	ListID string `json:"list_id"`
}

// ExtensionAlbumSubmitResponse represents a successful submission
// swagger:model ExtensionAlbumSubmitResponse
type ExtensionAlbumSubmitResponse struct {
	// Stored album id
	AlbumID string `json:"album_id"`
}

// ExtensionAlbumSubmitErrorResponse represents an error response for submissions
// swagger:model ExtensionAlbumSubmitErrorResponse
type ExtensionAlbumSubmitErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewExtensionAlbumSubmitHandler returns an HTTP handler accepting album
// metadata from the browser extension. Authenticated with an extension
// token, not a session JWT.
// @Summary Submit scraped album metadata
// @Tags extension
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param extensionAlbumSubmitRequest body handlers.ExtensionAlbumSubmitRequest true "Scraped album"
// @Success 201 {object} handlers.ExtensionAlbumSubmitResponse "Album stored"
// @Failure 400 {object} handlers.ExtensionAlbumSubmitErrorResponse "Invalid submission"
// @Router /extension/albums [post]
func NewExtensionAlbumSubmitHandler(albums AlbumResolver, lists ListAlbumAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		var req ExtensionAlbumSubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "invalid request body"})
			return
		}

		albumID, err := albums.GetOrCreate(r.Context(), models.AlbumDB{
			Artist:      req.Artist,
			Title:       req.Title,
			ReleaseDate: req.ReleaseDate,
			CoverURL:    req.CoverURL,
			Source:      models.SourceExtension,
		})
		if err != nil {
			if errors.Is(err, services.ErrAlbumInvalid) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "artist and title are required"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "Internal server error"})
			return
		}

		if req.ListID != "" {
			listID, err := uuid.Parse(req.ListID)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "invalid list id"})
				return
			}

			if _, err := lists.AddAlbum(r.Context(), userID, listID, albumID, ""); err != nil {
				switch {
				case errors.Is(err, services.ErrListNotFound):
					w.WriteHeader(http.StatusNotFound)
					json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "List not found"})
				case errors.Is(err, services.ErrListNotOwned):
					w.WriteHeader(http.StatusForbidden)
					json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "List does not belong to user"})
				default:
					logger.Log.Errorw("internal server error", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(ExtensionAlbumSubmitErrorResponse{Error: "Internal server error"})
				}
				return
			}
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ExtensionAlbumSubmitResponse{AlbumID: albumID.String()})
	}
}
