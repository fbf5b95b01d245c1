// Package quizgen builds multiple-choice questions from plain text using
// word-frequency and sentence heuristics.
package quizgen

import (
	"fmt"
	"log"
	"strings"
	"time"

	"testpro/internal/domain"
)

// Generator produces question batches. It holds no per-call state and is
// safe for concurrent use when its Rand is.
type Generator struct {
	cfg  Config
	rnd  Rand
	now  func() time.Time
	logf func(format string, args ...interface{})
}

// Option customises a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// WithClock sets the clock used for question IDs.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger replaces the diagnostic logger.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(g *Generator) { g.logf = logf }
}

// New creates a Generator.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:  cfg.withDefaults(),
		rnd:  globalRand{},
		now:  time.Now,
		logf: log.Printf,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// TargetCount is the number of questions text of sentenceCount qualifying
// sentences produces.
func (g *Generator) TargetCount(sentenceCount int) int {
	n := sentenceCount / g.cfg.SentencesPerQuestion
	if n > g.cfg.MaxPerDocument {
		n = g.cfg.MaxPerDocument
	}
	return n
}

// Generate returns up to MaxQuestions questions built from text. An empty
// result means text had too few qualifying sentences.
func (g *Generator) Generate(text string) []domain.Question {
	a := Analyze(text, g.cfg)
	target := g.TargetCount(len(a.Sentences))

	g.logf("quizgen.Generate: %d sentences, %d paragraphs, %d key terms, target %d questions",
		len(a.Sentences), len(a.Paragraphs), len(a.KeyTerms), target)

	stamp := g.now().UnixMilli()
	questions := make([]domain.Question, 0, target)
	for i := 0; i < target; i++ {
		questions = append(questions, g.buildQuestion(a, stamp, i))
	}

	if len(questions) > g.cfg.MaxQuestions {
		questions = questions[:g.cfg.MaxQuestions]
	}
	return questions
}

func (g *Generator) buildQuestion(a Analysis, stamp int64, i int) domain.Question {
	sentence := a.Sentences[g.rnd.IntN(len(a.Sentences))]
	template := questionTemplates[g.rnd.IntN(len(questionTemplates))]
	var term string
	if len(a.KeyTerms) > 0 {
		term = a.KeyTerms[g.rnd.IntN(len(a.KeyTerms))]
	}

	var prompt string
	if term != "" && strings.Contains(sentence, term) {
		prompt = fmt.Sprintf("%s %s?", template, term)
	} else {
		prompt = fmt.Sprintf("%s mencionado en: \"%s...\"?", template, excerpt(sentence, g.cfg.ExcerptLen))
	}

	options := append([]string{correctAnswer(g.rnd, term)}, wrongAnswers()...)
	correct := 0
	g.rnd.Shuffle(len(options), func(x, y int) {
		options[x], options[y] = options[y], options[x]
		switch correct {
		case x:
			correct = y
		case y:
			correct = x
		}
	})

	return domain.Question{
		ID:           fmt.Sprintf("q_%d_%d", stamp, i),
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correct,
	}
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
