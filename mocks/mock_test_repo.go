package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"testpro/internal/domain"
)

// MockTestRepo is a mock implementation of port.TestRepository.
type MockTestRepo struct {
	mock.Mock
}

func (m *MockTestRepo) Create(ctx context.Context, test *domain.Test) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockTestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Test, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Test), args.Error(1)
}

func (m *MockTestRepo) List(ctx context.Context, filter domain.TestFilter) ([]domain.Test, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Test), args.Int(1), args.Error(2)
}

func (m *MockTestRepo) Update(ctx context.Context, test *domain.Test) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockTestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestRepo) IncrementCompletions(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestRepo) ListCategories(ctx context.Context, publicOnly bool) ([]string, error) {
	args := m.Called(ctx, publicOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTestRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
