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

// ListReorderer defines the interface for reordering a list.
type ListReorderer interface {
	Reorder(ctx context.Context, userID, listID uuid.UUID, orderedItemIDs []uuid.UUID) error
}

// ListReorderRequest carries the full item order, first to last.
// swagger:model ListReorderRequest
type ListReorderRequest struct {
	// Ordered list item ids; must cover every item exactly once
	// required: true
	ItemIDs []string `json:"item_ids"`
}

// ListReorderResponse represents a successful reorder
// swagger:model ListReorderResponse
type ListReorderResponse struct {
	// Success message
	Message string `json:"message"`
}

// ListReorderErrorResponse represents an error response for reordering
// swagger:model ListReorderErrorResponse
type ListReorderErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListReorderHandler returns an HTTP handler reordering a list.
// Runs inside the request transaction so renumbering is atomic.
// @Summary Reorder a list
// @Description Renumbers the list's items to match the given order. The request must include every item exactly once.
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List id"
// @Param listReorderRequest body handlers.ListReorderRequest true "Full item order"
// @Success 200 {object} handlers.ListReorderResponse "List reordered"
// @Failure 400 {object} handlers.ListReorderErrorResponse "Invalid or incomplete order"
// @Failure 403 {object} handlers.ListReorderErrorResponse "List does not belong to user"
// @Failure 404 {object} handlers.ListReorderErrorResponse "List not found"
// @Router /lists/{listID}/reorder [put]
func NewListReorderHandler(svc ListReorderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		listID, err := uuid.Parse(chi.URLParam(r, "listID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "invalid list id"})
			return
		}

		var req ListReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "invalid request body"})
			return
		}

		itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
		for _, raw := range req.ItemIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "invalid item id: " + raw})
				return
			}
			itemIDs = append(itemIDs, id)
		}

		err = svc.Reorder(r.Context(), userID, listID, itemIDs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReorderIncomplete):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "Reorder must include every list item exactly once"})
			case errors.Is(err, services.ErrListNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "List not found"})
			case errors.Is(err, services.ErrListNotOwned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "List does not belong to user"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListReorderErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListReorderResponse{Message: "List reordered"})
	}
}
