package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
)

// ListCreator defines the interface for creating lists.
type ListCreator interface {
	CreateList(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (uuid.UUID, error)
}

// ListCreateRequest represents the JSON body for creating a list
// swagger:model ListCreateRequest
type ListCreateRequest struct {
	// List name
	// required: true
	// default: AOTY 2026
	Name string `json:"name"`

	// Optional description
	Description string `json:"description"`

	// Whether other users may view the list
	IsPublic bool `json:"is_public"`
}

// ListCreateResponse represents a successful list creation
// swagger:model ListCreateResponse
type ListCreateResponse struct {
	// Created list id
	ListID string `json:"list_id"`
}

// ListCreateErrorResponse represents an error response for list creation
// swagger:model ListCreateErrorResponse
type ListCreateErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListCreateHandler returns an HTTP handler creating a list.
// @Summary Create a new album list
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listCreateRequest body handlers.ListCreateRequest true "List creation request"
// @Success 201 {object} handlers.ListCreateResponse "List created"
// @Failure 400 {object} handlers.ListCreateErrorResponse "Invalid request"
// @Router /lists [post]
func NewListCreateHandler(svc ListCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		var req ListCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListCreateErrorResponse{Error: "invalid request body"})
			return
		}

		if req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListCreateErrorResponse{Error: "list name is required"})
			return
		}

		listID, err := svc.CreateList(r.Context(), userID, req.Name, req.Description, req.IsPublic)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListCreateErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ListCreateResponse{ListID: listID.String()})
	}
}
