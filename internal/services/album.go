package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

var (
	// ErrAlbumInvalid is returned when a submission lacks artist or title.
	ErrAlbumInvalid = errors.New("album requires artist and title")
	// ErrAlbumNotFound is returned when the referenced album does not exist.
	ErrAlbumNotFound = errors.New("album not found")
)

// AlbumReader defines read operations for albums.
type AlbumReader interface {
	GetByID(ctx context.Context, albumID uuid.UUID) (*models.AlbumDB, error)
}

// AlbumWriter defines the get-or-create operation for albums.
type AlbumWriter interface {
	Save(ctx context.Context, album models.AlbumDB) (uuid.UUID, error)
}

// AlbumService owns album creation. Extension submissions and search imports
// both go through GetOrCreate so duplicates collapse on the (artist, title) key.
type AlbumService struct {
	reader AlbumReader
	writer AlbumWriter
}

// NewAlbumService creates a new AlbumService.
func NewAlbumService(reader AlbumReader, writer AlbumWriter) *AlbumService {
	return &AlbumService{reader: reader, writer: writer}
}

// Get returns an album by id.
func (s *AlbumService) Get(ctx context.Context, albumID uuid.UUID) (*models.AlbumDB, error) {
	album, err := s.reader.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}
	return album, nil
}

// GetOrCreate stores the submitted album metadata, returning the id of the
// existing row when the (artist, title) key is already known.
func (s *AlbumService) GetOrCreate(ctx context.Context, album models.AlbumDB) (uuid.UUID, error) {
	album.Artist = strings.TrimSpace(album.Artist)
	album.Title = strings.TrimSpace(album.Title)
	if album.Artist == "" || album.Title == "" {
		return uuid.Nil, ErrAlbumInvalid
	}
	if album.Source == "" {
		album.Source = models.SourceManual
	}

	albumID, err := s.writer.Save(ctx, album)
	if err != nil {
		logger.Log.Errorw("failed to save album", "artist", album.Artist, "title", album.Title, "error", err)
		return uuid.Nil, err
	}

	return albumID, nil
}
