package quizgen_test

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/quizgen"
)

var wrongAnswers = []string{
	"No se menciona en el documento",
	"Es contrario a lo establecido en el texto",
	"No tiene relación con el tema principal",
}

func fixedClock() time.Time {
	return time.UnixMilli(1700000000000)
}

func newTestGenerator(seed uint64) *quizgen.Generator {
	return quizgen.New(quizgen.DefaultConfig(),
		quizgen.WithRand(quizgen.NewSeededRand(seed)),
		quizgen.WithClock(fixedClock),
		quizgen.WithLogger(func(string, ...interface{}) {}),
	)
}

// sentences builds n distinct sentences that all repeat word three times.
func sentences(n int, word string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s %s %s %02d", word, word, word, i)
	}
	return strings.Join(parts, ". ") + "."
}

func TestGenerate_RepeatedTermExample(t *testing.T) {
	g := newTestGenerator(1)

	questions := g.Generate(sentences(40, "ejemplo"))

	require.Len(t, questions, 13)
	mentions := 0
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		if strings.Contains(q.Prompt, "ejemplo") {
			mentions++
		}
	}
	assert.Positive(t, mentions)
}

func TestGenerate_PromptNamesTermWhenSentenceContainsIt(t *testing.T) {
	g := newTestGenerator(7)

	for _, q := range g.Generate(sentences(9, "ejemplo")) {
		assert.True(t, strings.HasSuffix(q.Prompt, " ejemplo?"), q.Prompt)
	}
}

func TestGenerate_NoQualifyingSentences(t *testing.T) {
	g := newTestGenerator(1)

	questions := g.Generate("Corto. Muy corto! Nada aquí? Tampoco.")

	assert.Empty(t, questions)
}

func TestGenerate_TooFewSentencesForOneQuestion(t *testing.T) {
	g := newTestGenerator(1)

	assert.Empty(t, g.Generate(sentences(2, "ejemplo")))
	assert.Len(t, g.Generate(sentences(3, "ejemplo")), 1)
}

func TestGenerate_CapsAtThirtyFive(t *testing.T) {
	g := newTestGenerator(3)

	questions := g.Generate(sentences(200, "capítulo"))

	assert.Len(t, questions, 35)
}

func TestGenerate_MaxQuestionsCap(t *testing.T) {
	cfg := quizgen.DefaultConfig()
	cfg.MaxPerDocument = 100
	g := quizgen.New(cfg,
		quizgen.WithRand(quizgen.NewSeededRand(5)),
		quizgen.WithLogger(func(string, ...interface{}) {}),
	)

	questions := g.Generate(sentences(300, "capítulo"))

	assert.Len(t, questions, 40)
}

func TestGenerate_CorrectIndexPointsAtCorrectAnswer(t *testing.T) {
	g := newTestGenerator(11)

	questions := g.Generate(sentences(60, "biología"))
	require.NotEmpty(t, questions)

	for _, q := range questions {
		require.Len(t, q.Options, 4)
		require.GreaterOrEqual(t, q.CorrectIndex, 0)
		require.LessOrEqual(t, q.CorrectIndex, 3)

		assert.NotContains(t, wrongAnswers, q.Options[q.CorrectIndex])
		var distractors []string
		for i, o := range q.Options {
			if i != q.CorrectIndex {
				distractors = append(distractors, o)
			}
		}
		assert.ElementsMatch(t, wrongAnswers, distractors)
	}
}

func TestGenerate_IDsUniqueWithinBatch(t *testing.T) {
	g := newTestGenerator(2)

	questions := g.Generate(sentences(30, "historia"))
	require.Len(t, questions, 10)

	seen := make(map[string]bool)
	for i, q := range questions {
		assert.Equal(t, fmt.Sprintf("q_1700000000000_%d", i), q.ID)
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	text := sentences(45, "química") + " Otra oración diferente sobre física moderna."

	a := newTestGenerator(99).Generate(text)
	b := newTestGenerator(99).Generate(text)

	assert.Equal(t, a, b)
}

func TestGenerate_ExcerptPromptQuotesAtMostEightyRunes(t *testing.T) {
	long := strings.Repeat("información ", 12)
	text := strings.Join([]string{long, long, long}, ". ") + "."
	g := quizgen.New(quizgen.DefaultConfig(),
		quizgen.WithRand(quizgen.NewSeededRand(4)),
		quizgen.WithLogger(func(string, ...interface{}) {}),
	)

	// The only key term is "información", which every sentence contains,
	// so force the excerpt path by upper-casing the sentences.
	questions := g.Generate(strings.ToUpper(text))
	require.Len(t, questions, 1)

	q := questions[0].Prompt
	start := strings.Index(q, `mencionado en: "`)
	require.NotEqual(t, -1, start, q)
	assert.True(t, strings.HasSuffix(q, `..."?`), q)

	quoted := strings.TrimSuffix(q[start+len(`mencionado en: "`):], `..."?`)
	assert.Equal(t, 80, utf8.RuneCountInString(quoted))
}

func TestGenerate_NoKeyTermsUsesExcerptAndGenericAnswer(t *testing.T) {
	text := "el sol y la mar de un rey que ve a mil. " +
		"la luz de un día con el mar al pie. " +
		"un pez y un can en la red del rey."
	g := newTestGenerator(8)

	questions := g.Generate(text)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Contains(t, q.Prompt, "mencionado en:")
	assert.NotContains(t, q.Options[q.CorrectIndex], "Se relaciona directamente con")
}

func TestGenerate_LengthBoundedBySentenceCount(t *testing.T) {
	for n := 0; n < 150; n += 7 {
		text := sentences(n, "geografía")
		a := quizgen.Analyze(text, quizgen.DefaultConfig())
		want := len(a.Sentences) / 3
		if want > 35 {
			want = 35
		}

		got := newTestGenerator(uint64(n)).Generate(text)

		assert.LessOrEqual(t, len(got), 40)
		assert.Equal(t, want, len(got), "n=%d", n)
	}
}

func TestTargetCount(t *testing.T) {
	g := quizgen.New(quizgen.DefaultConfig())

	assert.Equal(t, 0, g.TargetCount(0))
	assert.Equal(t, 0, g.TargetCount(2))
	assert.Equal(t, 13, g.TargetCount(40))
	assert.Equal(t, 35, g.TargetCount(1000))
}
