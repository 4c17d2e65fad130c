// Package store holds the local mirror of the event list: an in-memory
// working set loaded once from key-value storage, pure derived views over it,
// and rating aggregation. The mirror is a cache of what the user last saw,
// not the relational source of truth, and the two can diverge.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cityevents/events-system/internal/client/storage"
)

// StorageKey is the single key the serialized event list lives under.
const StorageKey = "events-list"

// Event is the client-side event shape. It intentionally differs from the
// server row: dates live under "date", images under "image", and ratings are
// carried inline.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Ratings     []int  `json:"ratings"`
	Image       string `json:"image,omitempty"`
}

// Store owns the in-memory working set and its persistence. All state changes
// go through it; derived views (Filter) never mutate the underlying list.
type Store struct {
	storage storage.Store
	log     zerolog.Logger
	events  []Event
}

func New(st storage.Store, log zerolog.Logger) *Store {
	return &Store{storage: st, log: log}
}

// Load reads the event list from storage. On first run, or when the stored
// value fails to parse, the fixed demonstration dataset is seeded and
// persisted instead of crashing the view.
func (s *Store) Load(ctx context.Context) ([]Event, error) {
	raw, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	if ok {
		var events []Event
		if jsonErr := json.Unmarshal([]byte(raw), &events); jsonErr == nil {
			s.events = events
			return s.Events(), nil
		}
		s.log.Warn().Msg("stored event list is unparsable, reseeding")
	}

	seed := SeedEvents()
	if err := s.Save(ctx, seed); err != nil {
		return nil, err
	}
	return s.Events(), nil
}

// Save serializes the full list and overwrites the stored value, then adopts
// it as the in-memory working set. Full-overwrite persistence, not incremental.
func (s *Store) Save(ctx context.Context, events []Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	s.events = events
	return nil
}

// Events returns a copy of the current working set.
func (s *Store) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Rate appends a rating to the matching event and persists the result. On any
// failure the prior in-memory state is left untouched.
func (s *Store) Rate(ctx context.Context, eventID int64, rating int) error {
	next, err := AddRating(s.events, eventID, rating)
	if err != nil {
		return err
	}
	return s.Save(ctx, next)
}

// Replace overwrites the mirror with a list fetched from elsewhere (the REST
// snapshot, typically). An explicit, manual sync, never automatic.
func (s *Store) Replace(ctx context.Context, events []Event) error {
	return s.Save(ctx, events)
}
