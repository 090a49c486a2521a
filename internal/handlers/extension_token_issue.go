package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
)

// ExtensionTokenIssuer defines the interface for issuing extension tokens.
type ExtensionTokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (token string, tokenID uuid.UUID, expiresAt time.Time, err error)
}

// ExtensionTokenIssueResponse carries the plaintext token. It is returned
// exactly once; only a hash is stored server-side.
// swagger:model ExtensionTokenIssueResponse
type ExtensionTokenIssueResponse struct {
	// Plaintext bearer token
	Token string `json:"token"`

	// Token id, used for revocation
	TokenID string `json:"token_id"`

	// Expiry timestamp
	ExpiresAt time.Time `json:"expires_at"`
}

// ExtensionTokenIssueErrorResponse represents an error response for issuance
// swagger:model ExtensionTokenIssueErrorResponse
type ExtensionTokenIssueErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewExtensionTokenIssueHandler returns an HTTP handler issuing a browser
// extension bearer token for the authenticated user.
// @Summary Issue a browser-extension token
// @Tags extension
// @Produce json
// @Security BearerAuth
// @Success 201 {object} handlers.ExtensionTokenIssueResponse "Token issued"
// @Failure 500 {object} handlers.ExtensionTokenIssueErrorResponse "Internal server error"
// @Router /extension/tokens [post]
func NewExtensionTokenIssueHandler(svc ExtensionTokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		token, tokenID, expiresAt, err := svc.Issue(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExtensionTokenIssueErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ExtensionTokenIssueResponse{
			Token:     token,
			TokenID:   tokenID.String(),
			ExpiresAt: expiresAt,
		})
	}
}
