// Command seedtests imports catalog entries from an Excel sheet.
// Each row names a PDF that is run through the generator and stored as a test.
// Columns: A=title, B=description, C=author, D=category, E=difficulty,
// F=duration (minutes), G=public (sí/no), H=PDF path relative to the sheet.
// Row 1 is a header.
// Usage: go run ./cmd/seedtests -file catalog.xlsx [-sheet Tests] [-dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"testpro/internal/config"
	"testpro/internal/domain"
	"testpro/internal/extract/pdf"
	"testpro/internal/quizgen"
	"testpro/internal/repository/postgres"
	"testpro/internal/service"
	"testpro/internal/storage"
)

type seedEntry struct {
	row         int
	title       string
	description string
	author      string
	category    string
	difficulty  domain.Difficulty
	duration    int
	isPublic    bool
	pdfPath     string
}

// authorNamespace derives stable author IDs from names so re-runs keep ownership.
var authorNamespace = uuid.MustParse("6f1c2a9e-4b7d-4c3e-9a55-0d8e2f6b7c41")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := flag.String("file", "catalog.xlsx", "Excel file with catalog rows")
	sheet := flag.String("sheet", "", "sheet name (defaults to the first sheet)")
	dryRun := flag.Bool("dry-run", false, "validate rows without touching the database")
	flag.Parse()

	f, err := excelize.OpenFile(*xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := *sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	entries, rowErrs := parseRows(rows, filepath.Dir(*xlsxPath))
	for _, rerr := range rowErrs {
		log.Printf("skipping: %v", rerr)
	}
	log.Printf("%s: %d valid rows, %d skipped", sheetName, len(entries), len(rowErrs))
	if *dryRun || len(entries) == 0 {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := storage.New(&cfg.Storage)
	if err != nil {
		return err
	}

	generator := quizgen.New(quizgen.Config{
		MinSentenceLen:       cfg.Generator.MinSentenceLen,
		MinParagraphLen:      cfg.Generator.MinParagraphLen,
		MinWordLen:           cfg.Generator.MinWordLen,
		KeyTermCount:         cfg.Generator.KeyTermCount,
		SentencesPerQuestion: cfg.Generator.SentencesPerQuestion,
		MaxPerDocument:       cfg.Generator.MaxPerDocument,
		MaxQuestions:         cfg.Generator.MaxQuestions,
		ExcerptLen:           cfg.Generator.ExcerptLen,
	})
	generationSvc := service.NewGenerationService(pdf.NewDocconvExtractor(), generator, &cfg.Upload)
	testSvc := service.NewTestService(postgres.NewTestRepo(db), store, generationSvc, &cfg.Upload)

	ctx := context.Background()
	created := 0
	for i := range entries {
		e := &entries[i]
		if err := seed(ctx, testSvc, e); err != nil {
			log.Printf("row %d (%s): %v", e.row, e.title, err)
			continue
		}
		created++
	}

	log.Printf("Seeded %d of %d tests", created, len(entries))
	return nil
}

func seed(ctx context.Context, testSvc service.TestService, e *seedEntry) error {
	data, err := os.ReadFile(e.pdfPath)
	if err != nil {
		return fmt.Errorf("read pdf: %w", err)
	}

	viewer := domain.Viewer{
		UserID: uuid.NewSHA1(authorNamespace, []byte(strings.ToLower(e.author))),
		Name:   e.author,
		Role:   domain.RoleOwner,
	}
	detail, err := testSvc.CreateFromUpload(ctx, viewer, service.CreateTestInput{
		Upload: service.UploadInput{
			Filename:    filepath.Base(e.pdfPath),
			ContentType: domain.ContentTypePDF,
			Size:        int64(len(data)),
			Data:        data,
		},
		Title:           e.title,
		Description:     e.description,
		Category:        e.category,
		Difficulty:      e.difficulty,
		DurationMinutes: e.duration,
		IsPublic:        e.isPublic,
	})
	if err != nil {
		return err
	}

	log.Printf("row %d: created %s with %d questions", e.row, detail.ID, detail.QuestionCount)
	return nil
}

// parseRows converts sheet rows into seed entries. Invalid rows are reported, not fatal.
func parseRows(rows [][]string, baseDir string) ([]seedEntry, []error) {
	var entries []seedEntry
	var errs []error

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowNum := i + 1

		title := cellVal(row, 0)
		pdfPath := cellVal(row, 7)
		if title == "" && pdfPath == "" {
			continue
		}
		if pdfPath == "" {
			errs = append(errs, fmt.Errorf("row %d: missing PDF path", rowNum))
			continue
		}
		if !filepath.IsAbs(pdfPath) {
			pdfPath = filepath.Join(baseDir, pdfPath)
		}

		author := cellVal(row, 2)
		if author == "" {
			errs = append(errs, fmt.Errorf("row %d: missing author", rowNum))
			continue
		}

		difficulty := domain.DifficultyMedium
		if raw := strings.ToLower(cellVal(row, 4)); raw != "" {
			difficulty = domain.Difficulty(raw)
			if !domain.ValidDifficulties[difficulty] {
				errs = append(errs, fmt.Errorf("row %d: invalid difficulty %q", rowNum, raw))
				continue
			}
		}

		duration := 0
		if raw := cellVal(row, 5); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				errs = append(errs, fmt.Errorf("row %d: invalid duration %q", rowNum, raw))
				continue
			}
			duration = n
		}

		entries = append(entries, seedEntry{
			row:         rowNum,
			title:       title,
			description: cellVal(row, 1),
			author:      author,
			category:    cellVal(row, 3),
			difficulty:  difficulty,
			duration:    duration,
			isPublic:    parseYes(cellVal(row, 6)),
			pdfPath:     pdfPath,
		})
	}
	return entries, errs
}

func parseYes(s string) bool {
	switch strings.ToLower(s) {
	case "sí", "si", "s", "yes", "y", "true", "1", "x":
		return true
	}
	return false
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
