package store

import (
	"sort"
	"strings"
	"time"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

const dateLayout = "2006-01-02"

// Filter is a pure projection over the event list: case-insensitive substring
// search across title, location, and description; exact category match unless
// the category is "all"; result sorted by date ascending. The input slice is
// never mutated.
func Filter(events []Event, searchTerm, category string) []Event {
	list := make([]Event, len(events))
	copy(list, events)

	sort.SliceStable(list, func(i, j int) bool {
		return parseDate(list[i].Date).Before(parseDate(list[j].Date))
	})

	search := strings.ToLower(strings.TrimSpace(searchTerm))
	if search != "" {
		matched := list[:0]
		for _, e := range list {
			hay := strings.ToLower(e.Title + " " + e.Location + " " + e.Description)
			if strings.Contains(hay, search) {
				matched = append(matched, e)
			}
		}
		list = matched
	}

	if category != "" && category != CategoryAll {
		matched := list[:0]
		for _, e := range list {
			if e.Category == category {
				matched = append(matched, e)
			}
		}
		list = matched
	}

	return list
}

// parseDate interprets a calendar date; unparsable dates sort first.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
