package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/domain"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:           "q_1_0",
			Prompt:       "¿Qué se puede inferir sobre fotosíntesis?",
			Options:      []string{"Opción uno", "Opción dos", "Opción, con coma", "Opción cuatro"},
			CorrectIndex: 2,
		},
		{
			ID:           "q_1_1",
			Prompt:       "¿Cuál es el concepto principal?",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		},
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 8)
	assert.Equal(t, "#", row[0])
	assert.Equal(t, "Pregunta", row[1])
	assert.Equal(t, "Respuesta correcta", row[6])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleQuestions()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, BOM))

	rows, err := csv.NewReader(bytes.NewReader(raw[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"1",
		"¿Qué se puede inferir sobre fotosíntesis?",
		"Opción uno", "Opción dos", "Opción, con coma", "Opción cuatro",
		"C",
		"q_1_0",
	}, rows[1])
	assert.Equal(t, "A", rows[2][6])
}

func TestQuestionToRow_ShortOptionsAndBadIndex(t *testing.T) {
	row := questionToRow(4, &domain.Question{ID: "x", Prompt: "p", Options: []string{"solo"}, CorrectIndex: 7})

	assert.Equal(t, "5", row[0])
	assert.Equal(t, "solo", row[2])
	assert.Empty(t, row[3])
	assert.Empty(t, row[6])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Biología Celular", "Biolog_a_Celular"},
		{"  __test__  ", "test"},
		{"a/b\\c", "a_b_c"},
		{"¿?", "test"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}

	long := SanitizeFilename(string(bytes.Repeat([]byte("x"), 150)))
	assert.Len(t, long, 100)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Historia_2025-03-09.csv", BuildFilename("Historia", domain.ExportFormatCSV, now))
	assert.Equal(t, "Historia_2025-03-09.xlsx", BuildFilename("Historia", domain.ExportFormatXLSX, now))
}
