// Package rest is a thin read-only client for the events API, used by the CLI
// to replace the local mirror with the server snapshot on explicit request.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cityevents/events-system/internal/client/store"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// serverEvent mirrors the wire shape of GET /api/events.
type serverEvent struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url"`
}

// FetchEvents retrieves the full event snapshot and maps it to the client
// shape. Server rows carry no ratings; pulled events start unrated.
func (c *Client) FetchEvents(ctx context.Context) ([]store.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/events", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list events failed with status: %d", resp.StatusCode)
	}

	var rows []serverEvent
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	events := make([]store.Event, 0, len(rows))
	for _, r := range rows {
		e := store.Event{
			ID:          r.ID,
			Title:       r.Title,
			Date:        r.EventDate,
			Location:    r.Location,
			Category:    r.Category,
			Description: r.Description,
			Ratings:     []int{},
		}
		if r.ImageURL != nil {
			e.Image = *r.ImageURL
		}
		events = append(events, e)
	}
	return events, nil
}
