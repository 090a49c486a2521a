package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestTrackPickSetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	albumID := uuid.New()

	tests := []struct {
		name          string
		albumIDParam  string
		reqBody       TrackPickSetRequest
		mockSetup     func(m *MockTrackPickSetter)
		expectedCode  int
		expectedError string
	}{
		{
			name:         "success",
			albumIDParam: albumID.String(),
			reqBody:      TrackPickSetRequest{TrackNumber: 5, TrackTitle: "Let Down"},
			mockSetup: func(m *MockTrackPickSetter) {
				m.EXPECT().
					SetPick(gomock.Any(), userID, albumID, 5, "Let Down").
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:          "invalid album id",
			albumIDParam:  "nope",
			reqBody:       TrackPickSetRequest{TrackNumber: 1},
			expectedCode:  400,
			expectedError: "invalid album id",
		},
		{
			name:         "non-positive track number",
			albumIDParam: albumID.String(),
			reqBody:      TrackPickSetRequest{TrackNumber: 0},
			mockSetup: func(m *MockTrackPickSetter) {
				m.EXPECT().
					SetPick(gomock.Any(), userID, albumID, 0, "").
					Return(services.ErrTrackPickInvalid)
			},
			expectedCode:  400,
			expectedError: "Track number must be positive",
		},
		{
			name:         "album not found",
			albumIDParam: albumID.String(),
			reqBody:      TrackPickSetRequest{TrackNumber: 2},
			mockSetup: func(m *MockTrackPickSetter) {
				m.EXPECT().
					SetPick(gomock.Any(), userID, albumID, 2, "").
					Return(services.ErrAlbumNotFound)
			},
			expectedCode:  404,
			expectedError: "Album not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTrackPickSetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewTrackPickSetHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := authedRequest(http.MethodPut, "/albums/"+tt.albumIDParam+"/track-pick", bytes.NewBuffer(bodyBytes), userID)
			req = withURLParam(req, "albumID", tt.albumIDParam)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp TrackPickSetResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "Track pick saved", resp.Message)
			} else {
				var resp TrackPickSetErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
