package port

import "testpro/internal/domain"

// QuestionGenerator builds a question batch from extracted text.
type QuestionGenerator interface {
	Generate(text string) []domain.Question
}
