// Package redis stores watch sessions in Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 24 * time.Hour

type client struct {
	conn       redis.UniversalClient
	sessionTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	sessionTTL time.Duration
}

type Option func(*config)

// WithSessionTTL sets how long a stored session survives its last update.
// Zero keeps sessions forever. Default: 24 hours.
func WithSessionTTL(d time.Duration) Option {
	return func(c *config) {
		c.sessionTTL = d
	}
}

// NewClient connects to the Redis server at addr and checks it answers.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newClient(conn, opts...), nil
}

func newClient(conn redis.UniversalClient, opts ...Option) *client {
	cfg := config{
		sessionTTL: defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:       conn,
		sessionTTL: cfg.sessionTTL,
	}
}
