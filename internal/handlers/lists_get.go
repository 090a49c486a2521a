package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/models"
)

// ListsGetter defines the interface for reading a user's lists.
type ListsGetter interface {
	GetLists(ctx context.Context, userID uuid.UUID) ([]models.ListDB, error)
}

// ListsGetErrorResponse represents an error response for listing lists
// swagger:model ListsGetErrorResponse
type ListsGetErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListsGetHandler returns an HTTP handler listing the user's lists.
// @Summary List the authenticated user's album lists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ListDB "Lists owned by the user"
// @Failure 500 {object} handlers.ListsGetErrorResponse "Internal server error"
// @Router /lists [get]
func NewListsGetHandler(svc ListsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		lists, err := svc.GetLists(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListsGetErrorResponse{Error: "Internal server error"})
			return
		}

		if lists == nil {
			lists = []models.ListDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(lists)
	}
}
