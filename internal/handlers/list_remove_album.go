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

// ListAlbumRemover defines the interface for removing a list item.
type ListAlbumRemover interface {
	RemoveAlbum(ctx context.Context, userID, listID, listItemID uuid.UUID) error
}

// ListRemoveAlbumResponse represents a successful item removal
// swagger:model ListRemoveAlbumResponse
type ListRemoveAlbumResponse struct {
	// Success message
	Message string `json:"message"`
}

// ListRemoveAlbumErrorResponse represents an error response for item removal
// swagger:model ListRemoveAlbumErrorResponse
type ListRemoveAlbumErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListRemoveAlbumHandler returns an HTTP handler removing a list item.
// @Summary Remove an item from a list
// @Description Removes the item and closes the position gap it leaves.
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List id"
// @Param itemID path string true "List item id"
// @Success 200 {object} handlers.ListRemoveAlbumResponse "Item removed"
// @Failure 403 {object} handlers.ListRemoveAlbumErrorResponse "List does not belong to user"
// @Failure 404 {object} handlers.ListRemoveAlbumErrorResponse "List or item not found"
// @Router /lists/{listID}/albums/{itemID} [delete]
func NewListRemoveAlbumHandler(svc ListAlbumRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		listID, err := uuid.Parse(chi.URLParam(r, "listID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListRemoveAlbumErrorResponse{Error: "invalid list id"})
			return
		}
		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListRemoveAlbumErrorResponse{Error: "invalid item id"})
			return
		}

		err = svc.RemoveAlbum(r.Context(), userID, listID, itemID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound),
				errors.Is(err, services.ErrListItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListRemoveAlbumErrorResponse{Error: "List or item not found"})
			case errors.Is(err, services.ErrListNotOwned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListRemoveAlbumErrorResponse{Error: "List does not belong to user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListRemoveAlbumErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListRemoveAlbumResponse{Message: "Item removed"})
	}
}
