package storage

import (
	"context"

	"github.com/rs/zerolog"

	redisdb "github.com/cityevents/events-system/internal/infrastructure/db/redis"
)

// Select picks the storage backend by capability detection: when a Redis
// address is configured and answers a ping, the Redis store wins; otherwise
// the file store under dir is used.
func Select(ctx context.Context, redisAddr string, redisDB int, dir string, log zerolog.Logger) Store {
	if redisAddr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: redisAddr, DB: redisDB})
		if err == nil {
			log.Debug().Str("addr", redisAddr).Msg("using redis storage backend")
			return NewRedisStore(client)
		}
		log.Warn().Err(err).Str("addr", redisAddr).Msg("redis unavailable, falling back to file storage")
	}

	log.Debug().Str("dir", dir).Msg("using file storage backend")
	return NewFileStore(dir)
}
