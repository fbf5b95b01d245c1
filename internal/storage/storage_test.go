package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/config"
	"testpro/internal/storage"
)

func TestNew_Noop(t *testing.T) {
	for _, provider := range []string{"", "noop"} {
		s, err := storage.New(&config.StorageConfig{Provider: provider})
		require.NoError(t, err)
		assert.NotNil(t, s)
	}
}

func TestNew_S3RequiresBucket(t *testing.T) {
	_, err := storage.New(&config.StorageConfig{Provider: "s3", Region: "us-east-1"})
	assert.Error(t, err)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := storage.New(&config.StorageConfig{Provider: "gcs"})
	assert.ErrorContains(t, err, "gcs")
}
