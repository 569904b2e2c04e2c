package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/standings/pkg/errors"
)

// RedisConfig configures the [Redis] sink.
type RedisConfig struct {
	Addr      string        `toml:"addr" env:"ADDR"`
	Password  string        `toml:"password" env:"PASSWORD"`
	DB        int           `toml:"db" env:"DB"`
	KeyPrefix string        `toml:"key_prefix" env:"KEY_PREFIX"`
	TTL       time.Duration `toml:"ttl" env:"TTL"` // 0 keeps images until overwritten
}

// redisAPI is the subset of *redis.Client used by the sink.
type redisAPI interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// Redis stores each image under its own key.
type Redis struct {
	client redisAPI
	prefix string
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection with a PING.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "redis sink: addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis sink: connect %s: %w", cfg.Addr, err)
	}
	return newRedis(client, cfg.KeyPrefix, cfg.TTL), nil
}

func newRedis(client redisAPI, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key for name.
func (r *Redis) Key(name string) string { return r.prefix + name }

// Save stores data under the prefixed name. Write failures are retryable.
func (r *Redis) Save(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateFileName(name); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.Key(name), data, r.ttl).Err(); err != nil {
		return retryable(fmt.Errorf("redis set %s: %w", r.Key(name), err))
	}
	return nil
}

// Close closes the connection pool.
func (r *Redis) Close() error { return r.client.Close() }

var _ Sink = (*Redis)(nil)
