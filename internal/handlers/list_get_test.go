package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestListGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	listID := uuid.New()
	list := models.ListDB{ListID: listID, UserID: userID, Name: "AOTY 2026"}
	items := []models.ListItemWithAlbum{
		{ListItemDB: models.ListItemDB{ListItemID: uuid.New(), ListID: listID, Position: 1}, Artist: "Radiohead", Title: "OK Computer"},
	}

	tests := []struct {
		name          string
		listIDParam   string
		mockSetup     func(m *MockListGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name:        "success",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListGetter) {
				m.EXPECT().
					GetList(gomock.Any(), userID, listID).
					Return(&list, items, nil)
			},
			expectedCode: 200,
		},
		{
			name:        "nil items become empty array",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListGetter) {
				m.EXPECT().
					GetList(gomock.Any(), userID, listID).
					Return(&list, nil, nil)
			},
			expectedCode: 200,
		},
		{
			name:          "invalid list id",
			listIDParam:   "not-a-uuid",
			expectedCode:  400,
			expectedError: "invalid list id",
		},
		{
			name:        "list not found",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListGetter) {
				m.EXPECT().
					GetList(gomock.Any(), userID, listID).
					Return(nil, nil, services.ErrListNotFound)
			},
			expectedCode:  404,
			expectedError: "List not found",
		},
		{
			name:        "private list",
			listIDParam: listID.String(),
			mockSetup: func(m *MockListGetter) {
				m.EXPECT().
					GetList(gomock.Any(), userID, listID).
					Return(nil, nil, services.ErrListNotOwned)
			},
			expectedCode:  403,
			expectedError: "List is private",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListGetHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/lists/"+tt.listIDParam, nil, userID)
			req = withURLParam(req, "listID", tt.listIDParam)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp ListGetResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, listID, resp.List.ListID)
				assert.NotNil(t, resp.Items)
			} else {
				var resp ListGetErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
