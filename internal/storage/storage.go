// Package storage abstracts file storage for product images. Backends:
// local filesystem for development, MinIO (or any S3-compatible endpoint)
// for deployments.
package storage

import (
	"context"
	"io"

	"github.com/shoplite/shoplite/internal"
)

// Storage is the file storage contract consumed by the product feature.
type Storage interface {
	// Put stores a file under key and returns its public URL.
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Get retrieves a file by key. The caller closes the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by key. Deleting a missing file is not an
	// error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for a stored key without touching the
	// backend.
	URL(key string) string

	// Exists checks whether a file is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates a Storage backend from configuration.
func New(cfg internal.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	case "minio":
		return NewMinioStorage(MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
