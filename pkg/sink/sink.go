// Package sink delivers rendered images to their destination.
//
// # Overview
//
// A [Sink] stores a named blob. The builder hands it each image under its
// conventional name ("standings-AL-E.jpg"); the sink decides where that
// lands:
//
//   - [Dir]: a local directory (the default)
//   - [S3]: an S3 bucket, optionally under a key prefix
//   - [Redis]: a Redis key per image, optionally with a TTL
//   - [Mongo]: a MongoDB GridFS bucket
//
// Names are validated before anything is written, so a sink can never be
// asked to write outside its root.
//
// # Retries
//
// Network sinks mark transient failures with [RetryableError]. Wrap a sink
// with [Retrying] to retry those with exponential backoff; other failures
// are returned immediately.
package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/standings/pkg/errors"
)

// Sink stores named image bytes.
type Sink interface {
	// Save stores data under name, replacing any previous value.
	Save(ctx context.Context, name string, data []byte) error

	// Close releases connections held by the sink.
	Close() error
}

// Kinds accepted by [Open].
const (
	KindDir   = "dir"
	KindS3    = "s3"
	KindRedis = "redis"
	KindMongo = "mongo"
)

// Kinds lists the supported sink kinds.
var Kinds = []string{KindDir, KindS3, KindRedis, KindMongo}

// Config selects and configures a sink.
type Config struct {
	Kind  string      `toml:"kind" env:"KIND"`
	Dir   string      `toml:"dir" env:"DIR"`
	S3    S3Config    `toml:"s3" envPrefix:"S3_"`
	Redis RedisConfig `toml:"redis" envPrefix:"REDIS_"`
	Mongo MongoConfig `toml:"mongo" envPrefix:"MONGO_"`
}

// Open builds the sink described by cfg. An empty kind selects [KindDir].
func Open(ctx context.Context, cfg Config) (Sink, error) {
	switch strings.ToLower(cfg.Kind) {
	case "", KindDir:
		return NewDir(cfg.Dir)
	case KindS3:
		return NewS3(ctx, cfg.S3)
	case KindRedis:
		return NewRedis(ctx, cfg.Redis)
	case KindMongo:
		return NewMongo(ctx, cfg.Mongo)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown sink kind %q (want one of %s)", cfg.Kind, strings.Join(Kinds, ", "))
	}
}

// Describe returns a short human-readable destination, e.g. "s3://bucket/prefix".
func Describe(cfg Config) string {
	switch strings.ToLower(cfg.Kind) {
	case KindS3:
		return fmt.Sprintf("s3://%s/%s", cfg.S3.Bucket, cfg.S3.Prefix)
	case KindRedis:
		return fmt.Sprintf("redis://%s/%d %s*", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.KeyPrefix)
	case KindMongo:
		return fmt.Sprintf("gridfs %s.%s", cfg.Mongo.Database, cfg.Mongo.Bucket)
	default:
		return cfg.Dir
	}
}
