package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded artwork images and generated payment QR
// codes live. Rows in the database only keep the public URL.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3/R2
	Region    string // for S3
	AccessKey string
	SecretKey string
	Endpoint  string // for R2 or custom S3
}

// NewStorage creates a storage backend based on config.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
