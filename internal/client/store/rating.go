package store

import (
	"errors"
	"math"
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
var ErrUnknownEvent = errors.New("no event with that id")

// AddRating returns a new list in which the matching event carries the extra
// rating; every other event is shared structurally. The input list and the
// matched event's rating slice are never mutated.
func AddRating(events []Event, eventID int64, rating int) ([]Event, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	next := make([]Event, len(events))
	copy(next, events)

	for i := range next {
		if next[i].ID != eventID {
			continue
		}
		ratings := make([]int, len(next[i].Ratings), len(next[i].Ratings)+1)
		copy(ratings, next[i].Ratings)
		next[i].Ratings = append(ratings, rating)
		return next, nil
	}

	return nil, ErrUnknownEvent
}

// Average returns the mean rating rounded to one fractional digit, or 0.0 for
// an empty sequence. Always recomputed, never stored.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0.0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}
