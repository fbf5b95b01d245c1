package port

import (
	"context"

	"testpro/internal/domain"
)

// TextExtractor converts a binary document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*domain.ExtractedDocument, error)
}
