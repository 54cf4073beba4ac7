package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// Connect opens the Redis instance backing the button-list cache and
// verifies it answers a ping. Cache reads degrade gracefully later, but a
// dead Redis at startup is a deployment fault worth failing on.
func Connect(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis connected")
	return client, nil
}
