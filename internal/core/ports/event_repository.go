package ports

import (
	"context"

	"github.com/cityevents/events-system/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	// List returns a full snapshot of all events joined with the creator's
	// username, ordered by event date ascending.
	List(ctx context.Context) ([]domain.Event, error)

	// Create inserts the event and returns the freshly-read stored row,
	// including the generated id and any database-applied defaults.
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)

	// Delete removes the event with the given id. Returns
	// domain.ErrEventNotFound when no row matches, including on repeat deletes.
	Delete(ctx context.Context, id uint) error
}
