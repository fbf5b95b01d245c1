package mocks

import (
	"github.com/stretchr/testify/mock"

	"testpro/internal/domain"
)

// MockQuestionGenerator is a mock implementation of port.QuestionGenerator.
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) Generate(text string) []domain.Question {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Question)
}
