package quizgen

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	letterRun        = regexp.MustCompile(`[a-záéíóúñ]+`)
)

// Analysis holds the statistics the generator derives from a text.
type Analysis struct {
	Sentences  []string
	Paragraphs []string
	KeyTerms   []string
}

// Analyze splits text into sentences and paragraphs and ranks its key terms.
func Analyze(text string, cfg Config) Analysis {
	cfg = cfg.withDefaults()
	return Analysis{
		Sentences:  splitSentences(text, cfg.MinSentenceLen),
		Paragraphs: splitParagraphs(text, cfg.MinParagraphLen),
		KeyTerms:   keyTerms(text, cfg.MinWordLen, cfg.KeyTermCount),
	}
}

func splitSentences(text string, minLen int) []string {
	var out []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > minLen {
			out = append(out, s)
		}
	}
	return out
}

func splitParagraphs(text string, minLen int) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > minLen {
			out = append(out, p)
		}
	}
	return out
}

type termCount struct {
	word  string
	count int
}

// keyTerms returns the limit most frequent words. Ties keep the order in
// which the words first appear.
func keyTerms(text string, minLen, limit int) []string {
	index := make(map[string]int)
	var counts []termCount
	for _, w := range letterRun.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(w) < minLen {
			continue
		}
		if i, ok := index[w]; ok {
			counts[i].count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, termCount{word: w, count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}

	terms := make([]string, len(counts))
	for i, tc := range counts {
		terms[i] = tc.word
	}
	return terms
}
