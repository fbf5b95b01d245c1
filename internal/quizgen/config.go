package quizgen

// Config holds the tunables of the heuristic generator.
type Config struct {
	// MinSentenceLen is the trimmed rune length a sentence must exceed.
	MinSentenceLen int

	// MinParagraphLen is the trimmed rune length a paragraph must exceed.
	MinParagraphLen int

	// MinWordLen is the minimum number of letters in a key term candidate.
	MinWordLen int

	// KeyTermCount is how many of the most frequent words become key terms.
	KeyTermCount int

	// SentencesPerQuestion divides the sentence count to get the target
	// number of questions.
	SentencesPerQuestion int

	// MaxPerDocument caps the number of generation iterations.
	MaxPerDocument int

	// MaxQuestions caps the returned list.
	MaxQuestions int

	// ExcerptLen is how many runes of a sentence are quoted in a prompt.
	ExcerptLen int
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		MinSentenceLen:       20,
		MinParagraphLen:      50,
		MinWordLen:           4,
		KeyTermCount:         20,
		SentencesPerQuestion: 3,
		MaxPerDocument:       35,
		MaxQuestions:         40,
		ExcerptLen:           80,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MinSentenceLen <= 0 {
		c.MinSentenceLen = d.MinSentenceLen
	}
	if c.MinParagraphLen <= 0 {
		c.MinParagraphLen = d.MinParagraphLen
	}
	if c.MinWordLen <= 0 {
		c.MinWordLen = d.MinWordLen
	}
	if c.KeyTermCount <= 0 {
		c.KeyTermCount = d.KeyTermCount
	}
	if c.SentencesPerQuestion <= 0 {
		c.SentencesPerQuestion = d.SentencesPerQuestion
	}
	if c.MaxPerDocument <= 0 {
		c.MaxPerDocument = d.MaxPerDocument
	}
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = d.MaxQuestions
	}
	if c.ExcerptLen <= 0 {
		c.ExcerptLen = d.ExcerptLen
	}
	return c
}
