package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

var (
	// ErrMergeTargetInDuplicates is returned when the canonical album is
	// listed among the duplicates to delete.
	ErrMergeTargetInDuplicates = errors.New("canonical album cannot be one of the duplicates")
	// ErrMergeNoDuplicates is returned for an empty duplicate set.
	ErrMergeNoDuplicates = errors.New("merge requires at least one duplicate album")
	// ErrScanThresholdInvalid is returned for thresholds below 2.
	ErrScanThresholdInvalid = errors.New("scan threshold must be at least 2")
)

// editionSuffix matches trailing edition qualifiers such as
// "(Deluxe Edition)", "[2011 Remaster]" or "(Expanded)".
var editionSuffix = regexp.MustCompile(`(?i)\s*[(\[][^)\]]*(deluxe|remaster(ed)?|edition|expanded|bonus|anniversary|reissue|mono|stereo)[^)\]]*[)\]]\s*$`)

// nonAlnum folds everything that is not a letter, digit or space.
var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N} ]+`)

// spaces collapses whitespace runs.
var spaces = regexp.MustCompile(`\s+`)

// NormalizeAlbumKey reduces artist and title to the key duplicates share:
// lowercase, edition suffixes stripped from the title, punctuation folded,
// whitespace collapsed.
func NormalizeAlbumKey(artist, title string) string {
	title = editionSuffix.ReplaceAllString(title, "")

	norm := func(s string) string {
		s = strings.ToLower(s)
		s = nonAlnum.ReplaceAllString(s, "")
		s = spaces.ReplaceAllString(s, " ")
		return strings.TrimSpace(s)
	}

	return norm(artist) + "|" + norm(title)
}

// DuplicateGroup is one cluster of albums sharing a normalized key.
type DuplicateGroup struct {
	Key    string           `json:"key"`
	Albums []models.AlbumDB `json:"albums"`
}

// AlbumScanner lists all albums for duplicate scanning.
type AlbumScanner interface {
	GetAll(ctx context.Context) ([]models.AlbumDB, error)
}

// AlbumMerger defines the write operations a merge needs. All of them run
// against the request transaction when one is in the context.
type AlbumMerger interface {
	RepointListItems(ctx context.Context, canonicalID uuid.UUID, duplicateIDs []uuid.UUID) error
	RepointTrackPicks(ctx context.Context, canonicalID uuid.UUID, duplicateIDs []uuid.UUID) error
	Delete(ctx context.Context, albumIDs []uuid.UUID) (int64, error)
}

// DuplicateService scans the album catalogue for duplicate entries and
// merges confirmed groups into a canonical album.
type DuplicateService struct {
	scanner     AlbumScanner
	albums      AlbumReader
	merger      AlbumMerger
	kafkaWriter KafkaWriter
}

// NewDuplicateService creates a new DuplicateService.
func NewDuplicateService(scanner AlbumScanner, albums AlbumReader, merger AlbumMerger, kafkaWriter KafkaWriter) *DuplicateService {
	return &DuplicateService{
		scanner:     scanner,
		albums:      albums,
		merger:      merger,
		kafkaWriter: kafkaWriter,
	}
}

// Scan groups albums by normalized (artist, title) key and returns the
// groups with at least threshold members.
func (s *DuplicateService) Scan(ctx context.Context, threshold int) ([]DuplicateGroup, error) {
	if threshold < 2 {
		return nil, ErrScanThresholdInvalid
	}

	albums, err := s.scanner.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load albums for duplicate scan", "error", err)
		return nil, err
	}

	byKey := make(map[string][]models.AlbumDB)
	var order []string
	for _, album := range albums {
		key := NormalizeAlbumKey(album.Artist, album.Title)
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], album)
	}

	var groups []DuplicateGroup
	for _, key := range order {
		members := byKey[key]
		if len(members) >= threshold {
			groups = append(groups, DuplicateGroup{Key: key, Albums: members})
		}
	}

	logger.Log.Infow("duplicate scan finished",
		"albums", len(albums),
		"groups", len(groups),
		"threshold", threshold,
	)

	return groups, nil
}

// Merge repoints list items and track picks from the duplicates to the
// canonical album, then deletes the duplicates. Callers must run it inside
// a transaction; the repositories pick it up from the context.
func (s *DuplicateService) Merge(ctx context.Context, adminID, canonicalID uuid.UUID, duplicateIDs []uuid.UUID) (int64, error) {
	if len(duplicateIDs) == 0 {
		return 0, ErrMergeNoDuplicates
	}
	for _, id := range duplicateIDs {
		if id == canonicalID {
			return 0, ErrMergeTargetInDuplicates
		}
	}

	canonical, err := s.albums.GetByID(ctx, canonicalID)
	if err != nil {
		return 0, err
	}
	if canonical == nil {
		return 0, ErrAlbumNotFound
	}

	if err := s.merger.RepointListItems(ctx, canonicalID, duplicateIDs); err != nil {
		logger.Log.Errorw("failed to repoint list items", "canonical", canonicalID, "error", err)
		return 0, err
	}
	if err := s.merger.RepointTrackPicks(ctx, canonicalID, duplicateIDs); err != nil {
		logger.Log.Errorw("failed to repoint track picks", "canonical", canonicalID, "error", err)
		return 0, err
	}

	deleted, err := s.merger.Delete(ctx, duplicateIDs)
	if err != nil {
		logger.Log.Errorw("failed to delete duplicate albums", "canonical", canonicalID, "error", err)
		return 0, err
	}

	s.publishMergeEvent(ctx, adminID, canonicalID)

	logger.Log.Infow("albums merged",
		"canonical", canonicalID,
		"duplicates", len(duplicateIDs),
		"deleted", deleted,
	)

	return deleted, nil
}

func (s *DuplicateService) publishMergeEvent(ctx context.Context, adminID, canonicalID uuid.UUID) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.ListEvent{
		EventID:    uuid.New().String(),
		Type:       models.EventAlbumsMerged,
		UserID:     adminID.String(),
		AlbumID:    canonicalID.String(),
		OccurredAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal merge event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.EventID), Value: data}); err != nil {
		logger.Log.Errorw("Failed to publish merge event to Kafka", "event_id", event.EventID, "error", err)
	}
}
