package noop_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/port"
	"testpro/internal/storage/noop"
)

func TestNoopStorage(t *testing.T) {
	s := noop.NewNoopStorage()

	out, err := s.Upload(context.Background(), port.UploadInput{
		Key:         "tests/abc/roma.pdf",
		Body:        bytes.NewReader([]byte("%PDF-1.4")),
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "noop://tests/abc/roma.pdf", out.Location)

	assert.NoError(t, s.Delete(context.Background(), "tests/abc/roma.pdf"))
}
