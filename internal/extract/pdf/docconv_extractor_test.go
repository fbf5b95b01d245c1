package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/domain"
	"testpro/internal/extract/pdf"
)

func TestDocconvExtractor_Extract_Success(t *testing.T) {
	var received []byte
	e := pdf.NewExtractorWithConverter(func(r *bytes.Reader) (string, map[string]string, error) {
		received, _ = io.ReadAll(r)
		return "texto extraído", map[string]string{"Pages": " 12 "}, nil
	})

	doc, err := e.Extract(context.Background(), []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "texto extraído", doc.Text)
	assert.Equal(t, 12, doc.PageCount)
	assert.Equal(t, []byte("%PDF-1.4"), received)
}

func TestDocconvExtractor_Extract_MissingPageCount(t *testing.T) {
	e := pdf.NewExtractorWithConverter(func(*bytes.Reader) (string, map[string]string, error) {
		return "body", map[string]string{"Title": "x"}, nil
	})

	doc, err := e.Extract(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, doc.PageCount)
}

func TestDocconvExtractor_Extract_BadPageCount(t *testing.T) {
	e := pdf.NewExtractorWithConverter(func(*bytes.Reader) (string, map[string]string, error) {
		return "body", map[string]string{"Pages": "many"}, nil
	})

	doc, err := e.Extract(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, doc.PageCount)
}

func TestDocconvExtractor_Extract_ConverterError(t *testing.T) {
	e := pdf.NewExtractorWithConverter(func(*bytes.Reader) (string, map[string]string, error) {
		return "", nil, errors.New("pdftotext: exit status 1")
	})

	doc, err := e.Extract(context.Background(), []byte("garbage"))

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestDocconvExtractor_Extract_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	e := pdf.NewExtractorWithConverter(func(*bytes.Reader) (string, map[string]string, error) {
		<-release
		return "late", nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	doc, err := e.Extract(ctx, []byte("%PDF"))

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
