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

// ListUpdater defines the interface for updating lists.
type ListUpdater interface {
	UpdateList(ctx context.Context, userID, listID uuid.UUID, name, description string, isPublic bool) error
}

// ListUpdateRequest represents the JSON body for updating a list
// swagger:model ListUpdateRequest
type ListUpdateRequest struct {
	// List name
	// required: true
	Name string `json:"name"`

	// Optional description
	Description string `json:"description"`

	// Whether other users may view the list
	IsPublic bool `json:"is_public"`
}

// ListUpdateResponse represents a successful list update
// swagger:model ListUpdateResponse
type ListUpdateResponse struct {
	// Success message
	Message string `json:"message"`
}

// ListUpdateErrorResponse represents an error response for list updates
// swagger:model ListUpdateErrorResponse
type ListUpdateErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListUpdateHandler returns an HTTP handler updating a list.
// @Summary Update a list's name, description or visibility
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List id"
// @Param listUpdateRequest body handlers.ListUpdateRequest true "List update request"
// @Success 200 {object} handlers.ListUpdateResponse "List updated"
// @Failure 403 {object} handlers.ListUpdateErrorResponse "List does not belong to user"
// @Failure 404 {object} handlers.ListUpdateErrorResponse "List not found"
// @Router /lists/{listID} [put]
func NewListUpdateHandler(svc ListUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		listID, err := uuid.Parse(chi.URLParam(r, "listID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListUpdateErrorResponse{Error: "invalid list id"})
			return
		}

		var req ListUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListUpdateErrorResponse{Error: "invalid request body"})
			return
		}
		if req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListUpdateErrorResponse{Error: "list name is required"})
			return
		}

		err = svc.UpdateList(r.Context(), userID, listID, req.Name, req.Description, req.IsPublic)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListUpdateErrorResponse{Error: "List not found"})
			case errors.Is(err, services.ErrListNotOwned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListUpdateErrorResponse{Error: "List does not belong to user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListUpdateResponse{Message: "List updated"})
	}
}
