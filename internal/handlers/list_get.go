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

// ListGetter defines the interface for reading one list with its items.
type ListGetter interface {
	GetList(ctx context.Context, userID, listID uuid.UUID) (*models.ListDB, []models.ListItemWithAlbum, error)
}

// ListGetResponse represents a list with its ordered items
// swagger:model ListGetResponse
type ListGetResponse struct {
	List  models.ListDB              `json:"list"`
	Items []models.ListItemWithAlbum `json:"items"`
}

// ListGetErrorResponse represents an error response for reading a list
// swagger:model ListGetErrorResponse
type ListGetErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListGetHandler returns an HTTP handler reading one list.
// @Summary Get a list with its ordered items
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List id"
// @Success 200 {object} handlers.ListGetResponse "List with items"
// @Failure 403 {object} handlers.ListGetErrorResponse "List is private"
// @Failure 404 {object} handlers.ListGetErrorResponse "List not found"
// @Router /lists/{listID} [get]
func NewListGetHandler(svc ListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		listID, err := uuid.Parse(chi.URLParam(r, "listID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListGetErrorResponse{Error: "invalid list id"})
			return
		}

		list, items, err := svc.GetList(r.Context(), userID, listID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListGetErrorResponse{Error: "List not found"})
			case errors.Is(err, services.ErrListNotOwned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListGetErrorResponse{Error: "List is private"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if items == nil {
			items = []models.ListItemWithAlbum{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListGetResponse{List: *list, Items: items})
	}
}
