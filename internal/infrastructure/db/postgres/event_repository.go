package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cityevents/events-system/internal/core/domain"
)

// EventRepository implements ports.EventRepository on the relational store.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns every event joined with the creator's username, ordered by
// event date ascending. Always a full snapshot; no pagination.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	err := r.db.WithContext(ctx).
		Model(&domain.Event{}).
		Select("events.*, users.username AS created_by_username").
		Joins("JOIN users ON users.id = events.created_by").
		Order("events.event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Create inserts the event and re-reads the stored row so the caller sees the
// generated id and database-applied defaults. The two statements are not
// wrapped in a transaction; a concurrent delete in between is an accepted race.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	var stored domain.Event
	if err := r.db.WithContext(ctx).First(&stored, event.ID).Error; err != nil {
		return nil, fmt.Errorf("read back event: %w", err)
	}
	return &stored, nil
}

// Delete removes the event with the given id. Deleting a missing id, or the
// same id twice, reports domain.ErrEventNotFound.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Event{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete event: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
