// Package storage provides the key-value persistence abstraction behind the
// local event mirror: a hosted Redis backend when one is reachable, and a
// plain JSON file on disk otherwise.
package storage

import "context"

// Store is a minimal key-value persistence interface. Get reports presence
// explicitly so a missing key is distinguishable from an empty value.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
