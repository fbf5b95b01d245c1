package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"testpro/internal/config"
	"testpro/internal/domain"
	"testpro/internal/export"
	"testpro/internal/port"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	filterAll        = "all"
)

// CreateTestInput is the DTO for publishing a test generated from a PDF.
type CreateTestInput struct {
	Upload          UploadInput
	Title           string
	Description     string
	Category        string
	Difficulty      domain.Difficulty
	DurationMinutes int
	IsPublic        bool
}

// UpdateTestInput is the DTO for partial test updates. Nil fields are left unchanged.
type UpdateTestInput struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	Category        *string            `json:"category"`
	Difficulty      *domain.Difficulty `json:"difficulty"`
	DurationMinutes *int               `json:"duration"`
	IsPublic        *bool              `json:"is_public"`
}

// ListTestsInput carries the raw catalog query parameters.
type ListTestsInput struct {
	Search     string
	Category   string
	Difficulty string
	Offset     int
	Limit      int
}

// TestSummary is a catalog entry without its questions.
type TestSummary struct {
	domain.Test
	QuestionCount int `json:"question_count"`
}

// QuestionView is a question as shown to a viewer. CorrectIndex is nil unless
// the viewer may edit the test.
type QuestionView struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex,omitempty"`
}

// TestDetail is a test together with its questions.
type TestDetail struct {
	TestSummary
	Questions []QuestionView `json:"questions"`
	CanEdit   bool           `json:"can_edit"`
}

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TestService defines the test catalog contract.
type TestService interface {
	CreateFromUpload(ctx context.Context, viewer domain.Viewer, input CreateTestInput) (*TestDetail, error)
	List(ctx context.Context, viewer domain.Viewer, input ListTestsInput) ([]TestSummary, int, error)
	Get(ctx context.Context, viewer domain.Viewer, id uuid.UUID) (*TestDetail, error)
	Update(ctx context.Context, viewer domain.Viewer, id uuid.UUID, input UpdateTestInput) (*TestDetail, error)
	Delete(ctx context.Context, viewer domain.Viewer, id uuid.UUID) error
	Submit(ctx context.Context, viewer domain.Viewer, id uuid.UUID, answers []int) (*domain.GradeResult, error)
	Export(ctx context.Context, viewer domain.Viewer, id uuid.UUID, format domain.ExportFormat) (*ExportFile, error)
	Categories(ctx context.Context, viewer domain.Viewer) ([]string, error)
}

type testService struct {
	repo       port.TestRepository
	storage    port.ObjectStorage
	generation GenerationService
	cfg        *config.UploadConfig
	now        func() time.Time
}

// NewTestService creates a new TestService implementation.
func NewTestService(
	repo port.TestRepository,
	storage port.ObjectStorage,
	generation GenerationService,
	cfg *config.UploadConfig,
) TestService {
	return &testService{
		repo:       repo,
		storage:    storage,
		generation: generation,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *testService) CreateFromUpload(ctx context.Context, viewer domain.Viewer, input CreateTestInput) (*TestDetail, error) {
	if !viewer.CanCreate() {
		return nil, domain.ErrForbidden
	}
	if err := validateUpload(input.Upload, s.cfg); err != nil {
		return nil, err
	}
	if err := normalizeCreateInput(&input); err != nil {
		return nil, err
	}

	testID := uuid.New()
	key := sourceKey(testID, input.Upload.Filename)

	var (
		result   *domain.GenerationResult
		archived bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.storage.Upload(gctx, port.UploadInput{
			Key:         key,
			Body:        bytes.NewReader(input.Upload.Data),
			ContentType: domain.ContentTypePDF,
			Size:        int64(len(input.Upload.Data)),
		})
		if err != nil {
			return fmt.Errorf("archiving source pdf: %w", err)
		}
		archived = true
		return nil
	})
	g.Go(func() error {
		var err error
		result, err = s.generation.GenerateFromPDF(gctx, input.Upload)
		return err
	})
	if err := g.Wait(); err != nil {
		if archived {
			s.deleteSource(ctx, key)
		}
		return nil, fmt.Errorf("testService.CreateFromUpload: %w", err)
	}

	duration := input.DurationMinutes
	if duration == 0 {
		duration = len(result.Questions)
	}

	now := s.now().UTC()
	test := &domain.Test{
		ID:              testID,
		Title:           input.Title,
		Description:     input.Description,
		AuthorID:        viewer.UserID,
		AuthorName:      viewer.Name,
		Category:        input.Category,
		Difficulty:      input.Difficulty,
		DurationMinutes: duration,
		IsPublic:        input.IsPublic,
		SourceFile:      input.Upload.Filename,
		SourceKey:       key,
		Pages:           result.Metadata.Pages,
		Questions:       domain.QuestionSet(result.Questions),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, test); err != nil {
		s.deleteSource(ctx, key)
		return nil, fmt.Errorf("testService.CreateFromUpload: %w", err)
	}

	log.Printf("testService.CreateFromUpload: created test %s with %d questions by user %s",
		test.ID, len(test.Questions), viewer.UserID)

	return buildDetail(test, viewer), nil
}

func (s *testService) List(ctx context.Context, viewer domain.Viewer, input ListTestsInput) ([]TestSummary, int, error) {
	filter, err := buildFilter(input)
	if err != nil {
		return nil, 0, err
	}
	filter.PublicOnly = viewer.IsGuest()

	tests, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("testService.List: %w", err)
	}

	out := make([]TestSummary, len(tests))
	for i := range tests {
		out[i] = summarize(&tests[i])
	}
	return out, total, nil
}

func (s *testService) Get(ctx context.Context, viewer domain.Viewer, id uuid.UUID) (*TestDetail, error) {
	test, err := s.visibleTest(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	return buildDetail(test, viewer), nil
}

func (s *testService) Update(ctx context.Context, viewer domain.Viewer, id uuid.UUID, input UpdateTestInput) (*TestDetail, error) {
	test, err := s.editableTest(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("title must not be empty: %w", domain.ErrInvalidInput)
		}
		test.Title = title
	}
	if input.Description != nil {
		test.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		test.Category = strings.TrimSpace(*input.Category)
	}
	if input.Difficulty != nil {
		if !domain.ValidDifficulties[*input.Difficulty] {
			return nil, fmt.Errorf("difficulty %q: %w", *input.Difficulty, domain.ErrInvalidInput)
		}
		test.Difficulty = *input.Difficulty
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, fmt.Errorf("duration must be positive: %w", domain.ErrInvalidInput)
		}
		test.DurationMinutes = *input.DurationMinutes
	}
	if input.IsPublic != nil {
		test.IsPublic = *input.IsPublic
	}
	test.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, test); err != nil {
		return nil, fmt.Errorf("testService.Update: %w", err)
	}
	return buildDetail(test, viewer), nil
}

func (s *testService) Delete(ctx context.Context, viewer domain.Viewer, id uuid.UUID) error {
	test, err := s.editableTest(ctx, viewer, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("testService.Delete: %w", err)
	}
	if test.SourceKey != "" {
		s.deleteSource(ctx, test.SourceKey)
	}
	log.Printf("testService.Delete: deleted test %s by user %s", id, viewer.UserID)
	return nil
}

func (s *testService) Submit(ctx context.Context, viewer domain.Viewer, id uuid.UUID, answers []int) (*domain.GradeResult, error) {
	test, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.CanStart(test) {
		return nil, domain.ErrForbidden
	}
	if len(answers) != len(test.Questions) {
		return nil, domain.ErrAnswerCountMismatch
	}

	result := grade(test, answers)

	// The grade is returned even if the counter cannot be bumped.
	if err := s.repo.IncrementCompletions(ctx, id); err != nil {
		log.Printf("testService.Submit: failed to increment completions for %s: %v", id, err)
	}
	return result, nil
}

func (s *testService) Export(ctx context.Context, viewer domain.Viewer, id uuid.UUID, format domain.ExportFormat) (*ExportFile, error) {
	if format == "" {
		format = domain.ExportFormatCSV
	}

	test, err := s.editableTest(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	var (
		buf         bytes.Buffer
		contentType string
	)
	switch format {
	case domain.ExportFormatCSV:
		contentType = "text/csv; charset=utf-8"
		err = export.WriteCSV(&buf, test.Questions)
	case domain.ExportFormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = export.WriteXLSX(&buf, test.Questions)
	default:
		return nil, domain.ErrInvalidExportFormat
	}
	if err != nil {
		return nil, fmt.Errorf("testService.Export: %w", err)
	}

	return &ExportFile{
		Filename:    export.BuildFilename(test.Title, format, s.now()),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *testService) Categories(ctx context.Context, viewer domain.Viewer) ([]string, error) {
	cats, err := s.repo.ListCategories(ctx, viewer.IsGuest())
	if err != nil {
		return nil, fmt.Errorf("testService.Categories: %w", err)
	}
	return cats, nil
}

// visibleTest loads a test and hides private tests from guests.
func (s *testService) visibleTest(ctx context.Context, viewer domain.Viewer, id uuid.UUID) (*domain.Test, error) {
	test, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !test.IsPublic && viewer.IsGuest() {
		return nil, domain.ErrForbidden
	}
	return test, nil
}

func (s *testService) editableTest(ctx context.Context, viewer domain.Viewer, id uuid.UUID) (*domain.Test, error) {
	test, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.CanEdit(test) {
		return nil, domain.ErrForbidden
	}
	return test, nil
}

func (s *testService) deleteSource(ctx context.Context, key string) {
	if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
		log.Printf("testService: failed to delete source %s: %v", key, err)
	}
}

func normalizeCreateInput(input *CreateTestInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)

	if input.Title == "" {
		input.Title = strings.TrimSuffix(input.Upload.Filename, path.Ext(input.Upload.Filename))
	}
	if input.Title == "" {
		return fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}
	if input.Difficulty == "" {
		input.Difficulty = domain.DifficultyMedium
	}
	if !domain.ValidDifficulties[input.Difficulty] {
		return fmt.Errorf("difficulty %q: %w", input.Difficulty, domain.ErrInvalidInput)
	}
	if input.DurationMinutes < 0 {
		return fmt.Errorf("duration must not be negative: %w", domain.ErrInvalidInput)
	}
	return nil
}

func buildFilter(input ListTestsInput) (domain.TestFilter, error) {
	filter := domain.TestFilter{
		Search: strings.TrimSpace(input.Search),
		Offset: input.Offset,
		Limit:  input.Limit,
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	if c := strings.TrimSpace(input.Category); c != filterAll {
		filter.Category = c
	}
	if d := strings.TrimSpace(input.Difficulty); d != "" && d != filterAll {
		if !domain.ValidDifficulties[domain.Difficulty(d)] {
			return domain.TestFilter{}, fmt.Errorf("difficulty %q: %w", d, domain.ErrInvalidInput)
		}
		filter.Difficulty = domain.Difficulty(d)
	}
	return filter, nil
}

// sourceKey builds the storage key of a test's archived PDF.
func sourceKey(testID uuid.UUID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "source.pdf"
	}
	return fmt.Sprintf("tests/%s/%s", testID, name)
}

func summarize(t *domain.Test) TestSummary {
	return TestSummary{Test: *t, QuestionCount: t.QuestionCount()}
}

func buildDetail(t *domain.Test, viewer domain.Viewer) *TestDetail {
	canEdit := viewer.CanEdit(t)
	views := make([]QuestionView, len(t.Questions))
	for i, q := range t.Questions {
		views[i] = QuestionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options}
		if canEdit {
			idx := q.CorrectIndex
			views[i].CorrectIndex = &idx
		}
	}
	return &TestDetail{
		TestSummary: summarize(t),
		Questions:   views,
		CanEdit:     canEdit,
	}
}

func grade(t *domain.Test, answers []int) *domain.GradeResult {
	correct := 0
	for i, q := range t.Questions {
		if answers[i] == q.CorrectIndex {
			correct++
		}
	}
	total := len(t.Questions)
	score := 0.0
	if total > 0 {
		score = math.Round(float64(correct)/float64(total)*1000) / 10
	}
	return &domain.GradeResult{TestID: t.ID, Correct: correct, Total: total, Score: score}
}
