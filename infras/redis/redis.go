package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"rental/config"

	"github.com/cenkalti/backoff/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	connectAttempts = 5
	connectTimeout  = 30 * time.Second
	pingTimeout     = 2 * time.Second
)

// Options maps the primary cache settings onto go-redis options.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}
}

// Connect pings client until it answers or the attempts run out.
func Connect(ctx context.Context, client *goRedis.Client, attempts uint) error {
	_, err := backoff.Retry(ctx, func() (string, error) {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		return client.Ping(pingCtx).Result()
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(attempts),
		backoff.WithMaxElapsedTime(connectTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("Redis not ready")
		}),
	)
	if err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	return nil
}

func New(config *config.Config) *goRedis.Client {
	client := goRedis.NewClient(Options(config))

	if err := Connect(context.Background(), client, connectAttempts); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	return client
}
