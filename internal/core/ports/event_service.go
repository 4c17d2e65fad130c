package ports

import (
	"context"

	"github.com/cityevents/events-system/internal/core/domain"
)

// CreateEventInput is the DTO passed from the transport layer to EventService.
type CreateEventInput struct {
	Title       string
	Description string
	EventDate   string
	Location    string
	Category    string
	ImageURL    string // optional; empty means absent
	CreatedBy   uint
}

// EventService implements the event lifecycle exposed over the API.
type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

// ChangeFeed publishes event lifecycle changes to downstream consumers.
// Implementations must be safe for concurrent use; publishing is best-effort.
type ChangeFeed interface {
	Publish(ctx context.Context, action string, event *domain.Event) error
}
