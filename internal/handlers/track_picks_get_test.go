package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/models"
)

func TestTrackPicksGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	picks := []models.TrackPickDB{
		{TrackPickID: uuid.New(), UserID: userID, AlbumID: uuid.New(), TrackNumber: 5, TrackTitle: "Let Down"},
	}

	tests := []struct {
		name          string
		mockSetup     func(m *MockTrackPicksGetter)
		expectedCode  int
		expectedCount int
	}{
		{
			name: "success",
			mockSetup: func(m *MockTrackPicksGetter) {
				m.EXPECT().
					GetPicks(gomock.Any(), userID).
					Return(picks, nil)
			},
			expectedCode:  200,
			expectedCount: 1,
		},
		{
			name: "no picks yields empty array",
			mockSetup: func(m *MockTrackPicksGetter) {
				m.EXPECT().
					GetPicks(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode:  200,
			expectedCount: 0,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockTrackPicksGetter) {
				m.EXPECT().
					GetPicks(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTrackPicksGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewTrackPicksGetHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/track-picks", nil, userID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var got []models.TrackPickDB
				err := json.Unmarshal(rr.Body.Bytes(), &got)
				assert.NoError(t, err)
				assert.Len(t, got, tt.expectedCount)
			}
		})
	}
}
