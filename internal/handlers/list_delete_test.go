package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestListDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	listID := uuid.New()

	tests := []struct {
		name          string
		listIDParam   string
		mockSetup     func(m *MockListDeleter)
		expectedCode  int
		expectedError string
	}{
		{
			name:        "success",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListDeleter) {
				m.EXPECT().
					DeleteList(gomock.Any(), userID, listID).
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:          "invalid list id",
			listIDParam:   "nope",
			expectedCode:  400,
			expectedError: "invalid list id",
		},
		{
			name:        "not found",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListDeleter) {
				m.EXPECT().
					DeleteList(gomock.Any(), userID, listID).
					Return(services.ErrListNotFound)
			},
			expectedCode:  404,
			expectedError: "List not found",
		},
		{
			name:        "not owned",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListDeleter) {
				m.EXPECT().
					DeleteList(gomock.Any(), userID, listID).
					Return(services.ErrListNotOwned)
			},
			expectedCode:  403,
			expectedError: "List does not belong to user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListDeleteHandler(mockSvc)

			req := authedRequest(http.MethodDelete, "/lists/"+tt.listIDParam, nil, userID)
			req = withURLParam(req, "listID", tt.listIDParam)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp ListDeleteResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "List deleted", resp.Message)
			} else {
				var resp ListDeleteErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
