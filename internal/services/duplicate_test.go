package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestNormalizeAlbumKey(t *testing.T) {
	tests := []struct {
		name   string
		artist string
		title  string
		want   string
	}{
		{
			name:   "plain",
			artist: "Radiohead",
			title:  "OK Computer",
			want:   "radiohead|ok computer",
		},
		{
			name:   "deluxe suffix stripped",
			artist: "Radiohead",
			title:  "OK Computer (Deluxe Edition)",
			want:   "radiohead|ok computer",
		},
		{
			name:   "remaster suffix stripped",
			artist: "King Crimson",
			title:  "Red [2011 Remaster]",
			want:   "king crimson|red",
		},
		{
			name:   "punctuation folded",
			artist: "Godspeed You! Black Emperor",
			title:  "F# A# ∞",
			want:   "godspeed you black emperor|f a",
		},
		{
			name:   "whitespace collapsed",
			artist: "  The   Cure ",
			title:  "Disintegration",
			want:   "the cure|disintegration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeAlbumKey(tt.artist, tt.title))
		})
	}
}

func TestDuplicateService_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums := []models.AlbumDB{
		{AlbumID: uuid.New(), Artist: "Radiohead", Title: "OK Computer"},
		{AlbumID: uuid.New(), Artist: "radiohead", Title: "OK Computer (Deluxe Edition)"},
		{AlbumID: uuid.New(), Artist: "Low", Title: "Things We Lost in the Fire"},
		{AlbumID: uuid.New(), Artist: "Radiohead", Title: "OK Computer [Remastered]"},
	}

	t.Run("groups above threshold", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		mockScanner.EXPECT().GetAll(gomock.Any()).Return(albums, nil)

		groups, err := svc.Scan(context.Background(), 2)
		assert.NoError(t, err)
		assert.Len(t, groups, 1)
		assert.Equal(t, "radiohead|ok computer", groups[0].Key)
		assert.Len(t, groups[0].Albums, 3)
	})

	t.Run("higher threshold filters groups", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		mockScanner.EXPECT().GetAll(gomock.Any()).Return(albums, nil)

		groups, err := svc.Scan(context.Background(), 4)
		assert.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("threshold below two rejected", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		_, err := svc.Scan(context.Background(), 1)
		assert.ErrorIs(t, err, services.ErrScanThresholdInvalid)
	})
}

func TestDuplicateService_Merge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	canonicalID := uuid.New()
	dups := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("success repoints then deletes", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		mockAlbums.EXPECT().GetByID(gomock.Any(), canonicalID).
			Return(&models.AlbumDB{AlbumID: canonicalID}, nil)

		gomock.InOrder(
			mockMerger.EXPECT().RepointListItems(gomock.Any(), canonicalID, dups).Return(nil),
			mockMerger.EXPECT().RepointTrackPicks(gomock.Any(), canonicalID, dups).Return(nil),
			mockMerger.EXPECT().Delete(gomock.Any(), dups).Return(int64(2), nil),
		)

		deleted, err := svc.Merge(context.Background(), adminID, canonicalID, dups)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("canonical among duplicates", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		_, err := svc.Merge(context.Background(), adminID, canonicalID, []uuid.UUID{dups[0], canonicalID})
		assert.ErrorIs(t, err, services.ErrMergeTargetInDuplicates)
	})

	t.Run("empty duplicate set", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		_, err := svc.Merge(context.Background(), adminID, canonicalID, nil)
		assert.ErrorIs(t, err, services.ErrMergeNoDuplicates)
	})

	t.Run("canonical not found", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		mockAlbums.EXPECT().GetByID(gomock.Any(), canonicalID).Return(nil, nil)

		_, err := svc.Merge(context.Background(), adminID, canonicalID, dups)
		assert.ErrorIs(t, err, services.ErrAlbumNotFound)
	})

	t.Run("repoint failure aborts", func(t *testing.T) {
		mockScanner := services.NewMockAlbumScanner(ctrl)
		mockAlbums := services.NewMockAlbumReader(ctrl)
		mockMerger := services.NewMockAlbumMerger(ctrl)
		svc := services.NewDuplicateService(mockScanner, mockAlbums, mockMerger, nil)

		mockAlbums.EXPECT().GetByID(gomock.Any(), canonicalID).
			Return(&models.AlbumDB{AlbumID: canonicalID}, nil)
		mockMerger.EXPECT().RepointListItems(gomock.Any(), canonicalID, dups).
			Return(errors.New("db error"))

		_, err := svc.Merge(context.Background(), adminID, canonicalID, dups)
		assert.EqualError(t, err, "db error")
	})
}
