package usecase

import (
	"strings"
	"unicode"
)

const (
	maxKeywordsPerChunk = 20
	maxEntitiesPerChunk = 10
	minKeywordLength    = 4
)

// Frequent Italian/English function words that carry no retrieval signal.
// Only words of minKeywordLength or more need to be listed.
var stopwords = map[string]struct{}{
	"anche": {}, "avere": {}, "come": {}, "della": {}, "delle": {},
	"degli": {}, "dove": {}, "essere": {}, "hanno": {}, "nella": {}, "nelle": {},
	"però": {}, "perché": {}, "questa": {}, "queste": {}, "questi": {},
	"questo": {}, "quella": {}, "quelle": {}, "quello": {}, "sono": {}, "stato": {},
	"tutte": {}, "tutti": {}, "tutto": {},
	"about": {}, "after": {}, "also": {}, "been": {}, "both": {}, "each": {},
	"from": {}, "have": {}, "into": {}, "more": {}, "other": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "were": {}, "what": {},
	"when": {}, "which": {}, "will": {}, "with": {}, "would": {}, "your": {},
}

// extractKeywords returns up to maxKeywordsPerChunk distinct lowercase
// alphabetic words of at least minKeywordLength runes, stopwords excluded.
// No NLP: this is the lexical side of hybrid retrieval, nothing more.
func extractKeywords(text string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, maxKeywordsPerChunk)

	for _, word := range splitAlphaLower(text) {
		if len([]rune(word)) < minKeywordLength {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
		if len(out) == maxKeywordsPerChunk {
			break
		}
	}
	return out
}

// extractEntities returns up to maxEntitiesPerChunk distinct sequences of
// consecutive capitalized words ("Studio Rossi", "Milano").
func extractEntities(text string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, maxEntitiesPerChunk)

	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		entity := strings.Join(current, " ")
		current = nil
		if _, dup := seen[entity]; dup {
			return
		}
		seen[entity] = struct{}{}
		if len(out) < maxEntitiesPerChunk {
			out = append(out, entity)
		}
	}

	for _, word := range strings.Fields(text) {
		trimmed := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		runes := []rune(trimmed)
		if len(runes) >= 2 && unicode.IsUpper(runes[0]) && !isAllUpper(runes) {
			current = append(current, trimmed)
			continue
		}
		flush()
	}
	flush()
	return out
}

func isAllUpper(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// jaccardSimilarity compares two texts as word sets.
func jaccardSimilarity(a, b string) float64 {
	setA := toWordSet(a)
	setB := toWordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for word := range setA {
		if _, ok := setB[word]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toWordSet(s string) map[string]struct{} {
	words := splitAlphaLower(s)
	out := make(map[string]struct{}, len(words))
	for _, word := range words {
		out[word] = struct{}{}
	}
	return out
}

func splitAlphaLower(s string) []string {
	if s == "" {
		return nil
	}

	words := make([]string, 0, 16)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		words = append(words, b.String())
	}
	return words
}
