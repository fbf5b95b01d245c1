package noop

import (
	"context"
	"io"
	"log"

	"testpro/internal/port"
)

type noopStorage struct{}

// NewNoopStorage creates an ObjectStorage that discards uploads and logs their keys.
func NewNoopStorage() port.ObjectStorage {
	return &noopStorage{}
}

func (s *noopStorage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	n, err := io.Copy(io.Discard, input.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("[NOOP STORAGE] discarded %s (%d bytes)", input.Key, n)
	return &port.UploadOutput{Location: "noop://" + input.Key}, nil
}

func (s *noopStorage) Delete(_ context.Context, key string) error {
	log.Printf("[NOOP STORAGE] delete %s", key)
	return nil
}
