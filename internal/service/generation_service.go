package service

import (
	"context"
	"fmt"
	"log"
	"mime"
	"strings"
	"unicode"
	"unicode/utf8"

	"testpro/internal/config"
	"testpro/internal/domain"
	"testpro/internal/port"
)

// UploadInput is the DTO for an uploaded PDF. Data holds the whole file.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// GenerationService turns an uploaded PDF into a question batch.
type GenerationService interface {
	GenerateFromPDF(ctx context.Context, input UploadInput) (*domain.GenerationResult, error)
}

type generationService struct {
	extractor port.TextExtractor
	generator port.QuestionGenerator
	cfg       *config.UploadConfig
}

// NewGenerationService creates a new GenerationService implementation.
func NewGenerationService(
	extractor port.TextExtractor,
	generator port.QuestionGenerator,
	cfg *config.UploadConfig,
) GenerationService {
	return &generationService{
		extractor: extractor,
		generator: generator,
		cfg:       cfg,
	}
}

func (s *generationService) GenerateFromPDF(ctx context.Context, input UploadInput) (*domain.GenerationResult, error) {
	if err := validateUpload(input, s.cfg); err != nil {
		return nil, err
	}

	log.Printf("generationService.GenerateFromPDF: received %s (%d bytes)", input.Filename, input.Size)

	if s.cfg.ExtractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ExtractTimeout)
		defer cancel()
	}

	log.Printf("generationService.GenerateFromPDF: extracting text from %s", input.Filename)
	doc, err := s.extractor.Extract(ctx, input.Data)
	if err != nil {
		return nil, fmt.Errorf("generationService.GenerateFromPDF: extracting %s: %w", input.Filename, err)
	}

	textLength := utf8.RuneCountInString(doc.Text)
	log.Printf("generationService.GenerateFromPDF: extracted %d characters from %d pages", textLength, doc.PageCount)

	if countNonSpace(doc.Text) < s.cfg.MinTextChars {
		return nil, domain.ErrInsufficientContent
	}

	questions := s.generator.Generate(doc.Text)
	if len(questions) == 0 {
		return nil, domain.ErrGenerationFailed
	}

	log.Printf("generationService.GenerateFromPDF: generated %d questions from %s", len(questions), input.Filename)

	return &domain.GenerationResult{
		Questions: questions,
		Metadata: domain.GenerationMetadata{
			Filename:           input.Filename,
			Pages:              doc.PageCount,
			TextLength:         textLength,
			QuestionsGenerated: len(questions),
		},
	}, nil
}

// validateUpload rejects an upload before any extraction or storage work is done.
func validateUpload(input UploadInput, cfg *config.UploadConfig) error {
	if input.Filename == "" && len(input.Data) == 0 {
		return domain.ErrMissingFile
	}
	if !isPDF(input.ContentType) {
		return domain.ErrUnsupportedMediaType
	}
	size := input.Size
	if n := int64(len(input.Data)); n > size {
		size = n
	}
	if size > cfg.MaxBytes() {
		return domain.ErrFileTooLarge
	}
	return nil
}

func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, domain.ContentTypePDF)
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
