package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchEvents_MapsWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/events" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Vasaros Festivalis 2025","description":"d","event_date":"2025-07-15","location":"Senamiesčio aikštė","category":"music","image_url":"https://example.com/a.jpg","created_by_username":"admin"},
			{"id":2,"title":"Knygų Mugė","description":"d","event_date":"2025-09-10","location":"Kultūros centras","category":"culture","image_url":null,"created_by_username":"admin"}
		]`))
	}))
	defer srv.Close()

	events, err := NewClient(srv.URL).FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Date != "2025-07-15" {
		t.Fatalf("event_date not mapped to date: %q", first.Date)
	}
	if first.Image != "https://example.com/a.jpg" {
		t.Fatalf("image_url not mapped: %q", first.Image)
	}
	if first.Ratings == nil || len(first.Ratings) != 0 {
		t.Fatalf("pulled events must start unrated, got %v", first.Ratings)
	}

	if events[1].Image != "" {
		t.Fatalf("null image_url should map to empty string, got %q", events[1].Image)
	}
}

func TestFetchEvents_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).FetchEvents(context.Background()); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}
