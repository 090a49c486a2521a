package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

// AlbumCatalogueSearcher defines the interface for searching upstream
// album catalogues.
type AlbumCatalogueSearcher interface {
	Search(ctx context.Context, query string) ([]models.AlbumDB, error)
}

// SearchErrorResponse represents an error response for album search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler searching for albums by free
// text query.
// @Summary Search albums across upstream catalogues
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {array} models.AlbumDB "Matching albums"
// @Failure 400 {object} handlers.SearchErrorResponse "Empty query"
// @Failure 500 {object} handlers.SearchErrorResponse "Internal server error"
// @Router /search/albums [get]
func NewSearchHandler(svc AlbumCatalogueSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albums, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSearchQueryEmpty):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "query must not be empty"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if albums == nil {
			albums = []models.AlbumDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(albums)
	}
}
