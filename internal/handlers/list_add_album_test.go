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
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestListAddAlbumHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	listID := uuid.New()
	albumID := uuid.New()
	item := models.ListItemDB{ListItemID: uuid.New(), ListID: listID, AlbumID: albumID, Position: 3}

	tests := []struct {
		name          string
		listIDParam   string
		reqBody       ListAddAlbumRequest
		mockSetup     func(albums *MockAlbumResolver, lists *MockListAlbumAdder)
		expectedCode  int
		expectedError string
	}{
		{
			name:        "add by existing album id",
			listIDParam: listID.String(),
			reqBody:     ListAddAlbumRequest{AlbumID: albumID.String(), Note: "heavy rotation"},
			mockSetup: func(albums *MockAlbumResolver, lists *MockListAlbumAdder) {
				lists.EXPECT().
					AddAlbum(gomock.Any(), userID, listID, albumID, "heavy rotation").
					Return(&item, nil)
			},
			expectedCode: 201,
		},
		{
			name:        "add by metadata resolves album first",
			listIDParam: listID.String(),
			reqBody:     ListAddAlbumRequest{Artist: "Radiohead", Title: "OK Computer", ReleaseDate: "1997-05-21"},
			mockSetup: func(albums *MockAlbumResolver, lists *MockListAlbumAdder) {
				albums.EXPECT().
					GetOrCreate(gomock.Any(), models.AlbumDB{
						Artist:      "Radiohead",
						Title:       "OK Computer",
						ReleaseDate: "1997-05-21",
						Source:      models.SourceManual,
					}).
					Return(albumID, nil)
				lists.EXPECT().
					AddAlbum(gomock.Any(), userID, listID, albumID, "").
					Return(&item, nil)
			},
			expectedCode: 201,
		},
		{
			name:          "invalid album id",
			listIDParam:   listID.String(),
			reqBody:       ListAddAlbumRequest{AlbumID: "not-a-uuid"},
			expectedCode:  400,
			expectedError: "invalid album id",
		},
		{
			name:        "metadata without artist",
			listIDParam: listID.String(),
			reqBody:     ListAddAlbumRequest{Title: "OK Computer"},
			mockSetup: func(albums *MockAlbumResolver, lists *MockListAlbumAdder) {
				albums.EXPECT().
					GetOrCreate(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrAlbumInvalid)
			},
			expectedCode:  400,
			expectedError: "artist and title are required",
		},
		{
			name:        "list not found",
			listIDParam: listID.String(),
			reqBody:     ListAddAlbumRequest{AlbumID: albumID.String()},
			mockSetup: func(albums *MockAlbumResolver, lists *MockListAlbumAdder) {
				lists.EXPECT().
					AddAlbum(gomock.Any(), userID, listID, albumID, "").
					Return(nil, services.ErrListNotFound)
			},
			expectedCode:  404,
			expectedError: "List not found",
		},
		{
			name:        "list not owned",
			listIDParam: listID.String(),
			reqBody:     ListAddAlbumRequest{AlbumID: albumID.String()},
			mockSetup: func(albums *MockAlbumResolver, lists *MockListAlbumAdder) {
				lists.EXPECT().
					AddAlbum(gomock.Any(), userID, listID, albumID, "").
					Return(nil, services.ErrListNotOwned)
			},
			expectedCode:  403,
			expectedError: "List does not belong to user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAlbums := NewMockAlbumResolver(ctrl)
			mockLists := NewMockListAlbumAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockAlbums, mockLists)
			}

			handler := NewListAddAlbumHandler(mockAlbums, mockLists)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := authedRequest(http.MethodPost, "/lists/"+tt.listIDParam+"/albums", bytes.NewBuffer(bodyBytes), userID)
			req = withURLParam(req, "listID", tt.listIDParam)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 201 {
				var resp ListAddAlbumResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, item.ListItemID, resp.Item.ListItemID)
			} else {
				var resp ListAddAlbumErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
