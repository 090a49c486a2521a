package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestTrackPickService_SetPick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	albumID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader := services.NewMockTrackPickReader(ctrl)
		mockWriter := services.NewMockTrackPickWriter(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		svc := services.NewTrackPickService(mockReader, mockWriter, mockAlbums)

		mockAlbums.EXPECT().GetByID(gomock.Any(), albumID).
			Return(&models.AlbumDB{AlbumID: albumID}, nil)
		mockWriter.EXPECT().Save(gomock.Any(), userID, albumID, 4, "Paranoid Android").
			Return(nil)

		err := svc.SetPick(context.Background(), userID, albumID, 4, "Paranoid Android")
		assert.NoError(t, err)
	})

	t.Run("non-positive track number", func(t *testing.T) {
		mockReader := services.NewMockTrackPickReader(ctrl)
		mockWriter := services.NewMockTrackPickWriter(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		svc := services.NewTrackPickService(mockReader, mockWriter, mockAlbums)

		err := svc.SetPick(context.Background(), userID, albumID, 0, "")
		assert.ErrorIs(t, err, services.ErrTrackPickInvalid)
	})

	t.Run("album missing", func(t *testing.T) {
		mockReader := services.NewMockTrackPickReader(ctrl)
		mockWriter := services.NewMockTrackPickWriter(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		svc := services.NewTrackPickService(mockReader, mockWriter, mockAlbums)

		mockAlbums.EXPECT().GetByID(gomock.Any(), albumID).Return(nil, nil)

		err := svc.SetPick(context.Background(), userID, albumID, 1, "Intro")
		assert.ErrorIs(t, err, services.ErrAlbumNotFound)
	})
}

func TestTrackPickService_ClearPick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	albumID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader := services.NewMockTrackPickReader(ctrl)
		mockWriter := services.NewMockTrackPickWriter(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		svc := services.NewTrackPickService(mockReader, mockWriter, mockAlbums)

		mockWriter.EXPECT().Delete(gomock.Any(), userID, albumID).Return(nil)

		assert.NoError(t, svc.ClearPick(context.Background(), userID, albumID))
	})

	t.Run("pick not set", func(t *testing.T) {
		mockReader := services.NewMockTrackPickReader(ctrl)
		mockWriter := services.NewMockTrackPickWriter(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		svc := services.NewTrackPickService(mockReader, mockWriter, mockAlbums)

		mockWriter.EXPECT().Delete(gomock.Any(), userID, albumID).Return(sql.ErrNoRows)

		err := svc.ClearPick(context.Background(), userID, albumID)
		assert.ErrorIs(t, err, services.ErrTrackPickNotFound)
	})
}

func TestTrackPickService_GetPicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTrackPickReader(ctrl)
	mockWriter := services.NewMockTrackPickWriter(ctrl)
	mockAlbums := services.NewMockAlbumReader(ctrl)
	svc := services.NewTrackPickService(mockReader, mockWriter, mockAlbums)

	userID := uuid.New()
	picks := []models.TrackPickDB{{TrackPickID: uuid.New(), UserID: userID, TrackNumber: 2}}

	mockReader.EXPECT().GetByUserID(gomock.Any(), userID).Return(picks, nil)

	got, err := svc.GetPicks(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, picks, got)
}
