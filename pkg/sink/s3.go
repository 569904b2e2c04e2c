package sink

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/matzehuels/standings/pkg/errors"
)

// S3Config configures the [S3] sink. Credentials come from the usual AWS
// chain (environment, shared config, instance metadata).
type S3Config struct {
	Bucket   string `toml:"bucket" env:"BUCKET"`
	Prefix   string `toml:"prefix" env:"PREFIX"`
	Region   string `toml:"region" env:"REGION"`
	Profile  string `toml:"profile" env:"PROFILE"`
	Endpoint string `toml:"endpoint" env:"ENDPOINT"` // e.g. a MinIO URL; enables path-style addressing
}

// s3API is the subset of *s3.Client used by the sink.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads each image as an object.
type S3 struct {
	client s3API
	bucket string
	prefix string
}

// NewS3 loads the AWS configuration and returns an S3 sink.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "s3 sink: bucket is required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3 sink: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3(client s3API, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key for name.
func (s *S3) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Save uploads data to the bucket. Upload failures are retryable.
func (s *S3) Save(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateFileName(name); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.Key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(name)),
		CacheControl:  aws.String("no-cache"),
	})
	if err != nil {
		return retryable(fmt.Errorf("s3 put %s/%s: %w", s.bucket, s.Key(name), err))
	}
	return nil
}

// Close is a no-op; the AWS client holds no connections that need closing.
func (s *S3) Close() error { return nil }

var _ Sink = (*S3)(nil)

func contentType(name string) string {
	switch path.Ext(name) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
