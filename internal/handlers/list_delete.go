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

// ListDeleter defines the interface for deleting lists.
type ListDeleter interface {
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
}

// ListDeleteResponse represents a successful list deletion
// swagger:model ListDeleteResponse
type ListDeleteResponse struct {
	// Success message
	Message string `json:"message"`
}

// ListDeleteErrorResponse represents an error response for list deletion
// swagger:model ListDeleteErrorResponse
type ListDeleteErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListDeleteHandler returns an HTTP handler deleting a list.
// @Summary Delete a list and its items
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List id"
// @Success 200 {object} handlers.ListDeleteResponse "List deleted"
// @Failure 403 {object} handlers.ListDeleteErrorResponse "List does not belong to user"
// @Failure 404 {object} handlers.ListDeleteErrorResponse "List not found"
// @Router /lists/{listID} [delete]
func NewListDeleteHandler(svc ListDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		listID, err := uuid.Parse(chi.URLParam(r, "listID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListDeleteErrorResponse{Error: "invalid list id"})
			return
		}

		err = svc.DeleteList(r.Context(), userID, listID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListDeleteErrorResponse{Error: "List not found"})
			case errors.Is(err, services.ErrListNotOwned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListDeleteErrorResponse{Error: "List does not belong to user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListDeleteResponse{Message: "List deleted"})
	}
}
