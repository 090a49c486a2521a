package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/services"
)

// AlbumsMerger defines the interface for merging duplicate albums into a
// canonical one.
type AlbumsMerger interface {
	Merge(ctx context.Context, adminID, canonicalID uuid.UUID, duplicateIDs []uuid.UUID) (int64, error)
}

// MergeAlbumsRequest names the canonical album and the duplicates to fold
// into it.
// swagger:model MergeAlbumsRequest
type MergeAlbumsRequest struct {
	// Canonical album id
	// required: true
	CanonicalID string `json:"canonical_id"`

	// Duplicate album ids to merge away
	// required: true
	DuplicateIDs []string `json:"duplicate_ids"`
}

// MergeAlbumsResponse represents a successful merge
// swagger:model MergeAlbumsResponse
type MergeAlbumsResponse struct {
	// Number of duplicate albums deleted
	Deleted int64 `json:"deleted"`
}

// MergeAlbumsErrorResponse represents an error response for the merge
// swagger:model MergeAlbumsErrorResponse
type MergeAlbumsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewMergeAlbumsHandler returns an HTTP handler merging duplicate albums.
// Admin only; the router wraps it in a transaction so the repoint and
// delete land atomically.
// @Summary Merge duplicate albums into a canonical one
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mergeAlbumsRequest body handlers.MergeAlbumsRequest true "Merge request"
// @Success 200 {object} handlers.MergeAlbumsResponse "Merge result"
// @Failure 400 {object} handlers.MergeAlbumsErrorResponse "Invalid merge request"
// @Failure 404 {object} handlers.MergeAlbumsErrorResponse "Canonical album not found"
// @Router /admin/api/merge-albums [post]
func NewMergeAlbumsHandler(svc AlbumsMerger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID := middlewares.GetUserIDFromContext(r.Context())

		var req MergeAlbumsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "invalid request body"})
			return
		}

		canonicalID, err := uuid.Parse(req.CanonicalID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "invalid canonical album id"})
			return
		}

		duplicateIDs := make([]uuid.UUID, 0, len(req.DuplicateIDs))
		for _, raw := range req.DuplicateIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "invalid duplicate album id"})
				return
			}
			duplicateIDs = append(duplicateIDs, id)
		}

		deleted, err := svc.Merge(r.Context(), adminID, canonicalID, duplicateIDs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMergeNoDuplicates):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "at least one duplicate album is required"})
			case errors.Is(err, services.ErrMergeTargetInDuplicates):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "canonical album cannot be one of the duplicates"})
			case errors.Is(err, services.ErrAlbumNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "Canonical album not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MergeAlbumsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MergeAlbumsResponse{Deleted: deleted})
	}
}
