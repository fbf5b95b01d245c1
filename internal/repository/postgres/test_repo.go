package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"testpro/internal/domain"
	"testpro/internal/port"
)

const testColumns = `id, title, description, author_id, author_name, category, difficulty,
	duration_minutes, is_public, completions, source_file, source_key, pages, questions,
	created_at, updated_at`

type testRepo struct {
	db *sqlx.DB
}

// NewTestRepo creates a new PostgreSQL-backed TestRepository.
func NewTestRepo(db *sqlx.DB) port.TestRepository {
	return &testRepo{db: db}
}

func (r *testRepo) Create(ctx context.Context, test *domain.Test) error {
	now := time.Now().UTC()
	test.CreatedAt = now
	test.UpdatedAt = now

	query := `INSERT INTO tests
		(id, title, description, author_id, author_name, category, difficulty,
		 duration_minutes, is_public, completions, source_file, source_key, pages, questions,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		test.ID, test.Title, test.Description, test.AuthorID, test.AuthorName, test.Category,
		test.Difficulty, test.DurationMinutes, test.IsPublic, test.Completions, test.SourceFile,
		test.SourceKey, test.Pages, test.Questions, test.CreatedAt, test.UpdatedAt)
	if err != nil {
		return fmt.Errorf("testRepo.Create: %w", err)
	}
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Test, error) {
	var test domain.Test
	err := r.db.GetContext(ctx, &test,
		"SELECT "+testColumns+" FROM tests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("testRepo.GetByID: %w", err)
	}
	return &test, nil
}

// buildWhereClause constructs the WHERE clause for catalog listings.
// It returns the clause (empty when unfiltered), its arguments and the next placeholder index.
func buildWhereClause(filter domain.TestFilter) (clause string, args []interface{}, next int) {
	var conds []string
	next = 1

	if filter.Search != "" {
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", next, next))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		next++
	}
	if filter.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", next))
		args = append(args, filter.Category)
		next++
	}
	if filter.Difficulty != "" {
		conds = append(conds, fmt.Sprintf("difficulty = $%d", next))
		args = append(args, filter.Difficulty)
		next++
	}
	if filter.PublicOnly {
		conds = append(conds, "is_public = TRUE")
	}

	if len(conds) == 0 {
		return "", args, next
	}
	return "WHERE " + strings.Join(conds, " AND "), args, next
}

// escapeLike escapes the ILIKE wildcards so user search text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *testRepo) List(ctx context.Context, filter domain.TestFilter) ([]domain.Test, int, error) {
	where, args, next := buildWhereClause(filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tests "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("testRepo.List count: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM tests %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, testColumns, where, next, next+1)
	var tests []domain.Test
	err = r.db.SelectContext(ctx, &tests, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("testRepo.List: %w", err)
	}
	return tests, total, nil
}

func (r *testRepo) Update(ctx context.Context, test *domain.Test) error {
	test.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE tests SET
			title = $1, description = $2, category = $3, difficulty = $4,
			duration_minutes = $5, is_public = $6, updated_at = $7
		 WHERE id = $8`,
		test.Title, test.Description, test.Category, test.Difficulty,
		test.DurationMinutes, test.IsPublic, test.UpdatedAt, test.ID)
	if err != nil {
		return fmt.Errorf("testRepo.Update: %w", err)
	}
	return requireOneRow(result, "testRepo.Update")
}

func (r *testRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tests WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("testRepo.Delete: %w", err)
	}
	return requireOneRow(result, "testRepo.Delete")
}

func (r *testRepo) IncrementCompletions(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tests SET completions = completions + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("testRepo.IncrementCompletions: %w", err)
	}
	return requireOneRow(result, "testRepo.IncrementCompletions")
}

func (r *testRepo) ListCategories(ctx context.Context, publicOnly bool) ([]string, error) {
	query := "SELECT DISTINCT category FROM tests WHERE category <> ''"
	if publicOnly {
		query += " AND is_public = TRUE"
	}
	query += " ORDER BY category"

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("testRepo.ListCategories: %w", err)
	}
	return categories, nil
}

func (r *testRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func requireOneRow(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
