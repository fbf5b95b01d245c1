package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"testpro/internal/domain"
	"testpro/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrMissingFile, http.StatusBadRequest, "MISSING_FILE"},
		{domain.ErrUnsupportedMediaType, http.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrInsufficientContent, http.StatusBadRequest, "INSUFFICIENT_CONTENT"},
		{domain.ErrGenerationFailed, http.StatusBadRequest, "GENERATION_FAILED"},
		{fmt.Errorf("testService.CreateFromUpload: %w", domain.ErrGenerationFailed), http.StatusBadRequest, "GENERATION_FAILED"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidExportFormat, http.StatusBadRequest, "INVALID_EXPORT_FORMAT"},
		{domain.ErrCatalogDisabled, http.StatusServiceUnavailable, "CATALOG_DISABLED"},
		{fmt.Errorf("pdf.Extract: %w: exit 1", domain.ErrExtractionFailed), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		status, code, msg := handler.MapDomainError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.NotEmpty(t, msg)
	}
}

func TestMapDomainError_InvalidInputKeepsDetail(t *testing.T) {
	_, code, msg := handler.MapDomainError(fmt.Errorf("title is required: %w", domain.ErrInvalidInput))
	assert.Equal(t, "INVALID_INPUT", code)
	assert.Equal(t, "title is required: invalid input", msg)
}
