// Package pdf extracts text from PDF documents with docconv, which shells out
// to poppler's pdftotext and pdfinfo.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"code.sajari.com/docconv"

	"testpro/internal/domain"
	"testpro/internal/port"
)

var _ port.TextExtractor = (*DocconvExtractor)(nil)

// ConvertFunc matches docconv.ConvertPDF.
type ConvertFunc func(r *bytes.Reader) (body string, meta map[string]string, err error)

// DocconvExtractor implements port.TextExtractor using docconv.
type DocconvExtractor struct {
	convert ConvertFunc
}

// NewDocconvExtractor returns an extractor backed by docconv.ConvertPDF.
func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{convert: func(r *bytes.Reader) (string, map[string]string, error) {
		return docconv.ConvertPDF(r)
	}}
}

// NewExtractorWithConverter returns an extractor using convert instead of docconv.
func NewExtractorWithConverter(convert ConvertFunc) *DocconvExtractor {
	return &DocconvExtractor{convert: convert}
}

type convertResult struct {
	body string
	meta map[string]string
	err  error
}

// Extract converts data and reads the page count from the pdfinfo metadata.
// The conversion keeps running after ctx is done but its result is dropped.
func (e *DocconvExtractor) Extract(ctx context.Context, data []byte) (*domain.ExtractedDocument, error) {
	done := make(chan convertResult, 1)
	go func() {
		body, meta, err := e.convert(bytes.NewReader(data))
		done <- convertResult{body: body, meta: meta, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("pdf.Extract: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("pdf.Extract: %w: %v", domain.ErrExtractionFailed, res.err)
		}
		return &domain.ExtractedDocument{
			Text:      res.body,
			PageCount: pageCount(res.meta),
		}, nil
	}
}

func pageCount(meta map[string]string) int {
	raw, ok := meta["Pages"]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("pdf.Extract: unparseable page count %q", raw)
		return 0
	}
	return n
}
