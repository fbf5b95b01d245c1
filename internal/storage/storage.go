// Package storage selects the object store that archives uploaded PDFs.
package storage

import (
	"fmt"

	"testpro/internal/config"
	"testpro/internal/port"
	"testpro/internal/storage/noop"
	"testpro/internal/storage/s3"
)

// New returns the ObjectStorage configured by cfg.Provider.
func New(cfg *config.StorageConfig) (port.ObjectStorage, error) {
	switch cfg.Provider {
	case "s3":
		return s3.NewS3Client(cfg)
	case "", "noop":
		return noop.NewNoopStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
