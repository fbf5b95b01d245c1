package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"testpro/internal/domain"
	"testpro/internal/service"
)

// MockGenerationService is a mock implementation of service.GenerationService.
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateFromPDF(ctx context.Context, input service.UploadInput) (*domain.GenerationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}
