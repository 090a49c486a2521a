package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/jwt"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/services"
)

// ExtensionTokenValidator resolves a bearer token to its owning user.
type ExtensionTokenValidator interface {
	Validate(ctx context.Context, token string) (uuid.UUID, error)
}

// ExtensionAuthMiddleware authenticates browser-extension requests with an
// extension bearer token. Unknown, expired and revoked tokens get 401.
func ExtensionAuthMiddleware(validator ExtensionTokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logger.Log.Errorw("extension authorization failed", "err", "missing or malformed bearer token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := validator.Validate(ctx, parts[1])
			if err != nil {
				if !errors.Is(err, services.ErrExtensionTokenInvalid) {
					logger.Log.Errorw("extension token validation error", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				logger.Log.Errorw("extension authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetClaimsToContext(ctx, &jwt.Claims{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
