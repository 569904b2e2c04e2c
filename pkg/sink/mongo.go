package sink

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/standings/pkg/errors"
)

// MongoConfig configures the [Mongo] sink.
type MongoConfig struct {
	URI      string `toml:"uri" env:"URI"`
	Database string `toml:"database" env:"DATABASE"`
	Bucket   string `toml:"bucket" env:"BUCKET"` // GridFS bucket name, default "standings"
}

// DefaultGridFSBucket is the bucket used when none is configured.
const DefaultGridFSBucket = "standings"

// Mongo stores each image as a GridFS file. Every save adds a new revision;
// readers opening by name get the newest one.
type Mongo struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

// NewMongo connects to MongoDB and opens the GridFS bucket.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	if cfg.URI == "" || cfg.Database == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "mongo sink: uri and database are required")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = DefaultGridFSBucket
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo sink: connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo sink: ping: %w", err)
	}

	bucket, err := gridfs.NewBucket(client.Database(cfg.Database), options.GridFSBucket().SetName(cfg.Bucket))
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo sink: open bucket %s: %w", cfg.Bucket, err)
	}
	return &Mongo{client: client, bucket: bucket}, nil
}

// Save uploads data as a new revision of name. Upload failures are retryable.
func (m *Mongo) Save(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateFileName(name); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := m.bucket.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("gridfs deadline: %w", err)
		}
	}

	opts := options.GridFSUpload().SetMetadata(bson.D{
		{Key: "contentType", Value: contentType(name)},
		{Key: "savedAt", Value: time.Now().UTC()},
	})
	if _, err := m.bucket.UploadFromStream(name, bytes.NewReader(data), opts); err != nil {
		return retryable(fmt.Errorf("gridfs upload %s: %w", name, err))
	}
	return nil
}

// Close disconnects from the server.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

var _ Sink = (*Mongo)(nil)
