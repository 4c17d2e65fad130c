// Package feed publishes event lifecycle changes to a Kafka topic so other
// systems (notification senders, caches) can follow admin mutations. The feed
// is optional: the server runs without it when no broker is configured.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cityevents/events-system/internal/core/domain"
)

// Announcer writes change messages to a single Kafka topic, keyed by event id
// so all changes to one event land on the same partition.
type Announcer struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

func NewAnnouncer(addr, topic string, log zerolog.Logger) *Announcer {
	return &Announcer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addr),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
		log: log,
	}
}

type changeMessage struct {
	Action   string `json:"action"`
	EventID  uint   `json:"event_id"`
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	At       string `json:"at"`
}

// Publish sends a single change message. Failures are returned to the caller,
// which treats them as non-fatal.
func (a *Announcer) Publish(ctx context.Context, action string, event *domain.Event) error {
	msg := changeMessage{
		Action:   action,
		EventID:  event.ID,
		Title:    event.Title,
		Category: string(event.Category),
		At:       time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("feed: marshal change: %w", err)
	}

	err = a.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.ID), 10)),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("feed: write message: %w", err)
	}

	a.log.Debug().Str("action", action).Uint("event_id", event.ID).Msg("change published")
	return nil
}

// Close flushes and closes the underlying writer.
func (a *Announcer) Close() error {
	return a.writer.Close()
}
