package conformance

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/distances/blobstore"
	"github.com/hupe1980/distances/blobstore/minio"
	"github.com/hupe1980/distances/blobstore/s3"
)

// OpenFixtureStore opens the store named by cfg.FixtureStore:
//
//	""                        no store, fixtures are generated in memory
//	"memory"                  process-local MemoryStore
//	"file:///dir" or "/dir"   LocalStore rooted at dir
//	"minio://bucket/prefix"   MinIO, connection from cfg.MinIO
//	"s3://bucket/prefix"      S3, settings from cfg.S3 and the AWS chain
//
// A nil store and nil error are returned for the empty string.
func OpenFixtureStore(ctx context.Context, cfg Config) (blobstore.BlobStore, error) {
	raw := strings.TrimSpace(cfg.FixtureStore)
	switch raw {
	case "":
		return nil, nil
	case "memory", "mem":
		return blobstore.NewMemoryStore(), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("conformance: fixture store %q: %w", raw, err)
	}

	prefix := strings.TrimPrefix(u.Path, "/")

	switch u.Scheme {
	case "", "file":
		dir := u.Path
		if u.Scheme == "" {
			dir = raw
		}
		return blobstore.NewLocalStore(dir), nil
	case "minio":
		store, err := minio.Dial(ctx, minio.Config{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Secure:    cfg.MinIO.Secure,
			Region:    cfg.MinIO.Region,
			Bucket:    u.Host,
			Prefix:    prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("conformance: dial minio: %w", err)
		}
		return store, nil
	case "s3":
		opts := []s3.Option{s3.WithPrefix(prefix)}
		if cfg.S3.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.S3.Endpoint))
		}
		store, err := s3.New(ctx, u.Host, opts...)
		if err != nil {
			return nil, fmt.Errorf("conformance: open s3: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("conformance: unsupported fixture store scheme %q", u.Scheme)
	}
}
