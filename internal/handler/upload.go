package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"testpro/internal/domain"
	"testpro/internal/service"
)

const (
	pdfFormField = "pdf"

	// multipartOverhead leaves room for boundaries and text fields around the file.
	multipartOverhead = 1 << 20
)

// limitBody caps the request body so an oversized upload fails while it is read.
func limitBody(c *gin.Context, maxFileBytes int64) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFileBytes+multipartOverhead)
}

// readPDFUpload reads the "pdf" multipart part into memory.
func readPDFUpload(c *gin.Context, maxFileBytes int64) (service.UploadInput, error) {
	header, err := c.FormFile(pdfFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return service.UploadInput{}, domain.ErrFileTooLarge
		}
		return service.UploadInput{}, domain.ErrMissingFile
	}
	if header.Size > maxFileBytes {
		return service.UploadInput{}, domain.ErrFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return service.UploadInput{}, fmt.Errorf("opening uploaded file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxFileBytes+1))
	if err != nil {
		return service.UploadInput{}, fmt.Errorf("reading uploaded file: %w", err)
	}

	return service.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
