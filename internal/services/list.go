package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

var (
	// ErrListNotFound is returned when the referenced list does not exist.
	ErrListNotFound = errors.New("list not found")
	// ErrListNotOwned is returned when a user touches a list they do not own.
	ErrListNotOwned = errors.New("list does not belong to user")
	// ErrListItemNotFound is returned when the referenced item does not exist.
	ErrListItemNotFound = errors.New("list item not found")
	// ErrReorderIncomplete is returned when a reorder request does not cover
	// every item in the list exactly once.
	ErrReorderIncomplete = errors.New("reorder must include every list item exactly once")
)

// ListReader defines read operations for lists.
type ListReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ListDB, error)
	GetByID(ctx context.Context, listID uuid.UUID) (*models.ListDB, error)
	GetItems(ctx context.Context, listID uuid.UUID) ([]models.ListItemWithAlbum, error)
}

// ListWriter defines write operations for lists and their items.
type ListWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (uuid.UUID, error)
	Update(ctx context.Context, listID uuid.UUID, name, description string, isPublic bool) error
	Delete(ctx context.Context, listID uuid.UUID) error
	AddItem(ctx context.Context, listID, albumID uuid.UUID, note string) (*models.ListItemDB, error)
	RemoveItem(ctx context.Context, listID, listItemID uuid.UUID) (uuid.UUID, error)
	Reorder(ctx context.Context, listID uuid.UUID, orderedItemIDs []uuid.UUID) (int64, error)
	CountItems(ctx context.Context, listID uuid.UUID) (int, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ListService handles list and list-item operations and activity publishing.
type ListService struct {
	reader      ListReader
	writer      ListWriter
	kafkaWriter KafkaWriter
}

// NewListService creates a new ListService.
func NewListService(reader ListReader, writer ListWriter, kafkaWriter KafkaWriter) *ListService {
	return &ListService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a list activity event to Kafka.
func (s *ListService) publishEvent(ctx context.Context, event models.ListEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// ownedList loads a list and checks ownership.
func (s *ListService) ownedList(ctx context.Context, userID, listID uuid.UUID) (*models.ListDB, error) {
	list, err := s.reader.GetByID(ctx, listID)
	if err != nil {
		logger.Log.Errorw("failed to load list", "listID", listID, "error", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	if list.UserID != userID {
		return nil, ErrListNotOwned
	}
	return list, nil
}

// GetLists returns all lists owned by the user.
func (s *ListService) GetLists(ctx context.Context, userID uuid.UUID) ([]models.ListDB, error) {
	return s.reader.GetByUserID(ctx, userID)
}

// GetList returns a list with its items. Non-owners may read public lists.
func (s *ListService) GetList(ctx context.Context, userID, listID uuid.UUID) (*models.ListDB, []models.ListItemWithAlbum, error) {
	list, err := s.reader.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	if list == nil {
		return nil, nil, ErrListNotFound
	}
	if list.UserID != userID && !list.IsPublic {
		return nil, nil, ErrListNotOwned
	}

	items, err := s.reader.GetItems(ctx, listID)
	if err != nil {
		return nil, nil, err
	}

	return list, items, nil
}

// CreateList creates a new list for the user.
func (s *ListService) CreateList(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (uuid.UUID, error) {
	listID, err := s.writer.Save(ctx, userID, name, description, isPublic)
	if err != nil {
		logger.Log.Errorw("failed to create list", "userID", userID, "name", name, "error", err)
		return uuid.Nil, err
	}

	s.publishEvent(ctx, models.ListEvent{
		EventID:    uuid.New().String(),
		Type:       models.EventListCreated,
		UserID:     userID.String(),
		ListID:     listID.String(),
		OccurredAt: time.Now(),
	})

	return listID, nil
}

// UpdateList renames or republishes a list the user owns.
func (s *ListService) UpdateList(ctx context.Context, userID, listID uuid.UUID, name, description string, isPublic bool) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	return s.writer.Update(ctx, listID, name, description, isPublic)
}

// DeleteList removes a list the user owns.
func (s *ListService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	if err := s.writer.Delete(ctx, listID); err != nil {
		return err
	}

	s.publishEvent(ctx, models.ListEvent{
		EventID:    uuid.New().String(),
		Type:       models.EventListDeleted,
		UserID:     userID.String(),
		ListID:     listID.String(),
		OccurredAt: time.Now(),
	})

	return nil
}

// AddAlbum appends an album to a list the user owns.
func (s *ListService) AddAlbum(ctx context.Context, userID, listID, albumID uuid.UUID, note string) (*models.ListItemDB, error) {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return nil, err
	}

	item, err := s.writer.AddItem(ctx, listID, albumID, note)
	if err != nil {
		logger.Log.Errorw("failed to add album to list", "listID", listID, "albumID", albumID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.ListEvent{
		EventID:    uuid.New().String(),
		Type:       models.EventAlbumAdded,
		UserID:     userID.String(),
		ListID:     listID.String(),
		AlbumID:    albumID.String(),
		OccurredAt: time.Now(),
	})

	return item, nil
}

// RemoveAlbum removes an item from a list the user owns.
func (s *ListService) RemoveAlbum(ctx context.Context, userID, listID, listItemID uuid.UUID) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}

	albumID, err := s.writer.RemoveItem(ctx, listID, listItemID)
	if err != nil {
		if isNoRows(err) {
			return ErrListItemNotFound
		}
		logger.Log.Errorw("failed to remove album from list", "listID", listID, "itemID", listItemID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.ListEvent{
		EventID:    uuid.New().String(),
		Type:       models.EventAlbumRemoved,
		UserID:     userID.String(),
		ListID:     listID.String(),
		AlbumID:    albumID.String(),
		OccurredAt: time.Now(),
	})

	return nil
}

// Reorder renumbers a list the user owns to match the given item id order.
// The request must cover every item in the list exactly once.
func (s *ListService) Reorder(ctx context.Context, userID, listID uuid.UUID, orderedItemIDs []uuid.UUID) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(orderedItemIDs))
	for _, id := range orderedItemIDs {
		if _, dup := seen[id]; dup {
			return ErrReorderIncomplete
		}
		seen[id] = struct{}{}
	}

	count, err := s.writer.CountItems(ctx, listID)
	if err != nil {
		return err
	}
	if count != len(orderedItemIDs) {
		return ErrReorderIncomplete
	}

	renumbered, err := s.writer.Reorder(ctx, listID, orderedItemIDs)
	if err != nil {
		logger.Log.Errorw("failed to reorder list", "listID", listID, "error", err)
		return err
	}
	if renumbered != int64(len(orderedItemIDs)) {
		return ErrReorderIncomplete
	}

	return nil
}
