package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

var (
	// ErrTrackPickInvalid is returned for non-positive track numbers.
	ErrTrackPickInvalid = errors.New("track number must be positive")
	// ErrTrackPickNotFound is returned when clearing a pick that is not set.
	ErrTrackPickNotFound = errors.New("track pick not found")
)

// TrackPickReader defines read operations for track picks.
type TrackPickReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.TrackPickDB, error)
	GetByUserAlbum(ctx context.Context, userID, albumID uuid.UUID) (*models.TrackPickDB, error)
}

// TrackPickWriter defines write operations for track picks.
type TrackPickWriter interface {
	Save(ctx context.Context, userID, albumID uuid.UUID, trackNumber int, trackTitle string) error
	Delete(ctx context.Context, userID, albumID uuid.UUID) error
}

// TrackPickService maintains each user's single highlighted track per album.
type TrackPickService struct {
	reader TrackPickReader
	writer TrackPickWriter
	albums AlbumReader
}

// NewTrackPickService creates a new TrackPickService.
func NewTrackPickService(reader TrackPickReader, writer TrackPickWriter, albums AlbumReader) *TrackPickService {
	return &TrackPickService{reader: reader, writer: writer, albums: albums}
}

// GetPicks returns all of the user's picks.
func (s *TrackPickService) GetPicks(ctx context.Context, userID uuid.UUID) ([]models.TrackPickDB, error) {
	return s.reader.GetByUserID(ctx, userID)
}

// SetPick sets or replaces the user's pick for an album.
func (s *TrackPickService) SetPick(ctx context.Context, userID, albumID uuid.UUID, trackNumber int, trackTitle string) error {
	if trackNumber < 1 {
		return ErrTrackPickInvalid
	}

	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		return err
	}
	if album == nil {
		return ErrAlbumNotFound
	}

	if err := s.writer.Save(ctx, userID, albumID, trackNumber, trackTitle); err != nil {
		logger.Log.Errorw("failed to save track pick", "userID", userID, "albumID", albumID, "error", err)
		return err
	}

	return nil
}

// ClearPick removes the user's pick for an album.
func (s *TrackPickService) ClearPick(ctx context.Context, userID, albumID uuid.UUID) error {
	err := s.writer.Delete(ctx, userID, albumID)
	if err != nil {
		if isNoRows(err) {
			return ErrTrackPickNotFound
		}
		logger.Log.Errorw("failed to clear track pick", "userID", userID, "albumID", albumID, "error", err)
		return err
	}
	return nil
}
