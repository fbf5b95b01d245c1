package domain

import "errors"

var (
	ErrMissingFile          = errors.New("no PDF file provided")
	ErrUnsupportedMediaType = errors.New("only PDF files are allowed")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrInsufficientContent  = errors.New("the PDF does not contain enough text to generate questions")
	ErrGenerationFailed     = errors.New("no questions could be generated from the PDF content")
	ErrExtractionFailed     = errors.New("text extraction failed")

	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidExportFormat = errors.New("unsupported export format")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	ErrCatalogDisabled     = errors.New("test catalog is not enabled")
)
