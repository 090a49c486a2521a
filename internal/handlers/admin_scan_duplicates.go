package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/services"
)

const defaultScanThreshold = 2

// DuplicateScanner defines the interface for scanning the catalogue for
// duplicate albums.
type DuplicateScanner interface {
	Scan(ctx context.Context, threshold int) ([]services.DuplicateGroup, error)
}

// ScanDuplicatesResponse represents the result of a duplicate scan
// swagger:model ScanDuplicatesResponse
type ScanDuplicatesResponse struct {
	// Scan threshold applied
	Threshold int `json:"threshold"`

	// Duplicate groups found
	Groups []services.DuplicateGroup `json:"groups"`
}

// ScanDuplicatesErrorResponse represents an error response for the scan
// swagger:model ScanDuplicatesErrorResponse
type ScanDuplicatesErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewScanDuplicatesHandler returns an HTTP handler scanning for duplicate
// albums. Admin only.
// @Summary Scan the catalogue for duplicate albums
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param threshold query int false "Minimum group size, default 2"
// @Success 200 {object} handlers.ScanDuplicatesResponse "Duplicate groups"
// @Failure 400 {object} handlers.ScanDuplicatesErrorResponse "Invalid threshold"
// @Router /admin/api/scan-duplicates [get]
func NewScanDuplicatesHandler(svc DuplicateScanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threshold := defaultScanThreshold
		if raw := r.URL.Query().Get("threshold"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ScanDuplicatesErrorResponse{Error: "invalid threshold"})
				return
			}
			threshold = parsed
		}

		groups, err := svc.Scan(r.Context(), threshold)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrScanThresholdInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ScanDuplicatesErrorResponse{Error: "threshold must be at least 2"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ScanDuplicatesErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if groups == nil {
			groups = []services.DuplicateGroup{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScanDuplicatesResponse{Threshold: threshold, Groups: groups})
	}
}
