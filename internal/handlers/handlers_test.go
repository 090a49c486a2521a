package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/jwt"
	"github.com/sushe-online/sushe-server/internal/middlewares"
)

// authedRequest builds a request carrying session claims for userID, the
// way AuthMiddleware leaves them for the handler.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := middlewares.SetClaimsToContext(req.Context(), &jwt.Claims{UserID: userID})
	return req.WithContext(ctx)
}

// withURLParam attaches a chi URL parameter to the request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
