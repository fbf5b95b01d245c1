package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ExtractedDocument is the plain-text view of an uploaded document.
type ExtractedDocument struct {
	Text      string
	PageCount int
}

// Question is a single multiple-choice question. Options always holds four
// entries and CorrectIndex points at the right one.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// GenerationMetadata describes the document a batch of questions came from.
type GenerationMetadata struct {
	Filename           string `json:"filename"`
	Pages              int    `json:"pages"`
	TextLength         int    `json:"textLength"`
	QuestionsGenerated int    `json:"questionsGenerated"`
}

// GenerationResult is the payload returned by the PDF upload endpoint.
type GenerationResult struct {
	Questions []Question         `json:"questions"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// QuestionSet is a list of questions persisted as a JSONB column.
type QuestionSet []Question

// Value implements driver.Valuer.
func (q QuestionSet) Value() (driver.Value, error) {
	if q == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(q)
}

// Scan implements sql.Scanner.
func (q *QuestionSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*q = nil
		return nil
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return errors.New("QuestionSet: unsupported source type")
	}
}

// Test is a saved quiz in the catalog.
type Test struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	Title           string      `db:"title" json:"title"`
	Description     string      `db:"description" json:"description"`
	AuthorID        uuid.UUID   `db:"author_id" json:"author_id"`
	AuthorName      string      `db:"author_name" json:"author"`
	Category        string      `db:"category" json:"category"`
	Difficulty      Difficulty  `db:"difficulty" json:"difficulty"`
	DurationMinutes int         `db:"duration_minutes" json:"duration"`
	IsPublic        bool        `db:"is_public" json:"is_public"`
	Completions     int         `db:"completions" json:"completions"`
	SourceFile      string      `db:"source_file" json:"source_file"`
	SourceKey       string      `db:"source_key" json:"-"`
	Pages           int         `db:"pages" json:"pages"`
	Questions       QuestionSet `db:"questions" json:"-"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
}

// QuestionCount returns the number of questions in the test.
func (t *Test) QuestionCount() int {
	return len(t.Questions)
}

// TestFilter narrows a catalog listing.
type TestFilter struct {
	Search     string
	Category   string
	Difficulty Difficulty
	PublicOnly bool
	Offset     int
	Limit      int
}

// Viewer identifies who is looking at the catalog. A zero Viewer is a guest.
type Viewer struct {
	UserID uuid.UUID
	Name   string
	Role   UserRole
}

// IsGuest reports whether the viewer is unauthenticated.
func (v Viewer) IsGuest() bool {
	return v.Role == "" || v.Role == RoleGuest
}

// CanCreate reports whether the viewer may add tests to the catalog.
func (v Viewer) CanCreate() bool {
	switch v.Role {
	case RoleOwner, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// CanEdit reports whether the viewer may change or delete t.
func (v Viewer) CanEdit(t *Test) bool {
	if v.Role == RoleEditor || v.Role == RoleAdmin {
		return true
	}
	return !v.IsGuest() && v.UserID != uuid.Nil && v.UserID == t.AuthorID
}

// CanStart reports whether the viewer may take t.
func (v Viewer) CanStart(t *Test) bool {
	return !v.IsGuest() || t.IsPublic
}

// GradeResult is the outcome of a submission.
type GradeResult struct {
	TestID  uuid.UUID `json:"test_id"`
	Correct int       `json:"correct"`
	Total   int       `json:"total"`
	Score   float64   `json:"score"`
}
