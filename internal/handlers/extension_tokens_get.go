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

// ExtensionTokensLister defines the interface for listing a user's tokens.
type ExtensionTokensLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ExtensionTokenDB, error)
}

// ExtensionTokensGetErrorResponse represents an error response for listing tokens
// swagger:model ExtensionTokensGetErrorResponse
type ExtensionTokensGetErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewExtensionTokensGetHandler returns an HTTP handler listing the user's
// extension tokens. Hashes only; plaintext is never stored.
// @Summary List the authenticated user's extension tokens
// @Tags extension
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ExtensionTokenDB "Extension tokens"
// @Failure 500 {object} handlers.ExtensionTokensGetErrorResponse "Internal server error"
// @Router /extension/tokens [get]
func NewExtensionTokensGetHandler(svc ExtensionTokensLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		tokens, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExtensionTokensGetErrorResponse{Error: "Internal server error"})
			return
		}

		if tokens == nil {
			tokens = []models.ExtensionTokenDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(tokens)
	}
}
