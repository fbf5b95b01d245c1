// Package export renders a test's questions as CSV or XLSX for authors.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"testpro/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by the CSV and XLSX exports.
var columns = []string{
	"#",
	"Pregunta",
	"Opción A",
	"Opción B",
	"Opción C",
	"Opción D",
	"Respuesta correcta",
	"ID",
}

var optionLetters = []string{"A", "B", "C", "D"}

// Writer wraps csv.Writer for exporting questions as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteQuestions converts questions to CSV rows and writes them.
func (w *Writer) WriteQuestions(questions []domain.Question) error {
	for i := range questions {
		if err := w.csv.Write(questionToRow(i, &questions[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a BOM, the header and every question to out.
func WriteCSV(out io.Writer, questions []domain.Question) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteQuestions(questions); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// questionToRow converts a question to a row. Missing options are left empty.
func questionToRow(i int, q *domain.Question) []string {
	row := make([]string, len(columns))
	row[0] = strconv.Itoa(i + 1)
	row[1] = q.Prompt
	for j := 0; j < len(optionLetters) && j < len(q.Options); j++ {
		row[2+j] = q.Options[j]
	}
	row[6] = correctLetter(q.CorrectIndex)
	row[7] = q.ID
	return row
}

func correctLetter(idx int) string {
	if idx < 0 || idx >= len(optionLetters) {
		return ""
	}
	return optionLetters[idx]
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a test title for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "test"
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_title}_{YYYY-MM-DD}.{ext}
func BuildFilename(title string, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(title), now.Format("2006-01-02"), format)
}
