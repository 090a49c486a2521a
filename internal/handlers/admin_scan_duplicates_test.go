package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/jwt"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

func adminRequest(method, target string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := middlewares.SetClaimsToContext(req.Context(), &jwt.Claims{UserID: userID, IsAdmin: true})
	return req.WithContext(ctx)
}

func TestScanDuplicatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	groups := []services.DuplicateGroup{
		{
			Key: "radiohead|ok computer",
			Albums: []models.AlbumDB{
				{AlbumID: uuid.New(), Artist: "Radiohead", Title: "OK Computer"},
				{AlbumID: uuid.New(), Artist: "Radiohead", Title: "OK Computer (Deluxe Edition)"},
			},
		},
	}

	tests := []struct {
		name          string
		target        string
		mockSetup     func(m *MockDuplicateScanner)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "default threshold",
			target: "/admin/api/scan-duplicates",
			mockSetup: func(m *MockDuplicateScanner) {
				m.EXPECT().
					Scan(gomock.Any(), 2).
					Return(groups, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "explicit threshold",
			target: "/admin/api/scan-duplicates?threshold=3",
			mockSetup: func(m *MockDuplicateScanner) {
				m.EXPECT().
					Scan(gomock.Any(), 3).
					Return(nil, nil)
			},
			expectedCode: 200,
		},
		{
			name:          "non-numeric threshold",
			target:        "/admin/api/scan-duplicates?threshold=abc",
			expectedCode:  400,
			expectedError: "invalid threshold",
		},
		{
			name:   "threshold below minimum",
			target: "/admin/api/scan-duplicates?threshold=1",
			mockSetup: func(m *MockDuplicateScanner) {
				m.EXPECT().
					Scan(gomock.Any(), 1).
					Return(nil, services.ErrScanThresholdInvalid)
			},
			expectedCode:  400,
			expectedError: "threshold must be at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDuplicateScanner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewScanDuplicatesHandler(mockSvc)

			req := adminRequest(http.MethodGet, tt.target, adminID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp ScanDuplicatesResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.NotNil(t, resp.Groups)
			} else {
				var resp ScanDuplicatesErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
