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

// ExtensionTokenRevoker defines the interface for revoking extension tokens.
type ExtensionTokenRevoker interface {
	Revoke(ctx context.Context, userID, tokenID uuid.UUID) error
}

// ExtensionTokenRevokeResponse represents a successful revocation
// swagger:model ExtensionTokenRevokeResponse
type ExtensionTokenRevokeResponse struct {
	// Success message
	Message string `json:"message"`
}

// ExtensionTokenRevokeErrorResponse represents an error response for revocation
// swagger:model ExtensionTokenRevokeErrorResponse
type ExtensionTokenRevokeErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewExtensionTokenRevokeHandler returns an HTTP handler revoking one of
// the user's extension tokens.
// @Summary Revoke a browser-extension token
// @Tags extension
// @Produce json
// @Security BearerAuth
// @Param tokenID path string true "Token id"
// @Success 200 {object} handlers.ExtensionTokenRevokeResponse "Token revoked"
// @Failure 404 {object} handlers.ExtensionTokenRevokeErrorResponse "Token not found"
// @Router /extension/tokens/{tokenID} [delete]
func NewExtensionTokenRevokeHandler(svc ExtensionTokenRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		tokenID, err := uuid.Parse(chi.URLParam(r, "tokenID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExtensionTokenRevokeErrorResponse{Error: "invalid token id"})
			return
		}

		err = svc.Revoke(r.Context(), userID, tokenID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExtensionTokenNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExtensionTokenRevokeErrorResponse{Error: "Token not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExtensionTokenRevokeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExtensionTokenRevokeResponse{Message: "Token revoked"})
	}
}
