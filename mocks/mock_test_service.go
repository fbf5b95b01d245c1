package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"testpro/internal/domain"
	"testpro/internal/service"
)

// MockTestService is a mock implementation of service.TestService.
type MockTestService struct {
	mock.Mock
}

func (m *MockTestService) CreateFromUpload(ctx context.Context, viewer domain.Viewer, input service.CreateTestInput) (*service.TestDetail, error) {
	args := m.Called(ctx, viewer, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TestDetail), args.Error(1)
}

func (m *MockTestService) List(ctx context.Context, viewer domain.Viewer, input service.ListTestsInput) ([]service.TestSummary, int, error) {
	args := m.Called(ctx, viewer, input)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]service.TestSummary), args.Int(1), args.Error(2)
}

func (m *MockTestService) Get(ctx context.Context, viewer domain.Viewer, id uuid.UUID) (*service.TestDetail, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TestDetail), args.Error(1)
}

func (m *MockTestService) Update(ctx context.Context, viewer domain.Viewer, id uuid.UUID, input service.UpdateTestInput) (*service.TestDetail, error) {
	args := m.Called(ctx, viewer, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TestDetail), args.Error(1)
}

func (m *MockTestService) Delete(ctx context.Context, viewer domain.Viewer, id uuid.UUID) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

func (m *MockTestService) Submit(ctx context.Context, viewer domain.Viewer, id uuid.UUID, answers []int) (*domain.GradeResult, error) {
	args := m.Called(ctx, viewer, id, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GradeResult), args.Error(1)
}

func (m *MockTestService) Export(ctx context.Context, viewer domain.Viewer, id uuid.UUID, format domain.ExportFormat) (*service.ExportFile, error) {
	args := m.Called(ctx, viewer, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockTestService) Categories(ctx context.Context, viewer domain.Viewer) ([]string, error) {
	args := m.Called(ctx, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
