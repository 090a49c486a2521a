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

func TestListUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	listID := uuid.New()

	tests := []struct {
		name          string
		listIDParam   string
		reqBody       ListUpdateRequest
		mockSetup     func(m *MockListUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name:        "success",
			listIDParam: listID.String(),
			reqBody:     ListUpdateRequest{Name: "AOTY 2026 final", IsPublic: true},
			mockSetup: func(m *MockListUpdater) {
				m.EXPECT().
					UpdateList(gomock.Any(), userID, listID, "AOTY 2026 final", "", true).
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:          "invalid list id",
			listIDParam:   "nope",
			reqBody:       ListUpdateRequest{Name: "x"},
			expectedCode:  400,
			expectedError: "invalid list id",
		},
		{
			name:          "missing name",
			listIDParam:   listID.String(),
			reqBody:       ListUpdateRequest{},
			expectedCode:  400,
			expectedError: "list name is required",
		},
		{
			name:        "not found",
			listIDParam: listID.String(),
			reqBody:     ListUpdateRequest{Name: "x"},
			mockSetup: func(m *MockListUpdater) {
				m.EXPECT().
					UpdateList(gomock.Any(), userID, listID, "x", "", false).
					Return(services.ErrListNotFound)
			},
			expectedCode:  404,
			expectedError: "List not found",
		},
		{
			name:        "not owned",
			listIDParam: listID.String(),
			reqBody:     ListUpdateRequest{Name: "x"},
			mockSetup: func(m *MockListUpdater) {
				m.EXPECT().
					UpdateList(gomock.Any(), userID, listID, "x", "", false).
					Return(services.ErrListNotOwned)
			},
			expectedCode:  403,
			expectedError: "List does not belong to user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListUpdateHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := authedRequest(http.MethodPut, "/lists/"+tt.listIDParam, bytes.NewBuffer(bodyBytes), userID)
			req = withURLParam(req, "listID", tt.listIDParam)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp ListUpdateResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "List updated", resp.Message)
			} else {
				var resp ListUpdateErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
