package port

import (
	"context"

	"github.com/google/uuid"

	"testpro/internal/domain"
)

// TestRepository persists catalog tests.
type TestRepository interface {
	Create(ctx context.Context, test *domain.Test) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Test, error)
	List(ctx context.Context, filter domain.TestFilter) ([]domain.Test, int, error)
	Update(ctx context.Context, test *domain.Test) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementCompletions(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context, publicOnly bool) ([]string, error)
	Ping(ctx context.Context) error
}
