// Package tokenize splits chapter text into sentences and words.
//
// Sentences end at every '.', '?' or '!' with no abbreviation handling, so
// "Mr. Smith" yields two sentences. Words are maximal runs of word
// characters (Unicode letters, Unicode numbers and underscore) optionally
// joined by single internal hyphens: "well-known" is one word, "a--b" is two
// and a trailing or leading hyphen is dropped.
package tokenize

import "regexp"

var (
	sentenceDelimiter = regexp.MustCompile(`[.?!]`)
	wordPattern       = regexp.MustCompile(`[\p{L}\p{N}_]+(?:-[\p{L}\p{N}_]+)*`)
)

// SplitSentences splits text on every sentence-terminal mark. Empty segments
// are kept; an empty text yields a single empty sentence.
func SplitSentences(text string) []string {
	return sentenceDelimiter.Split(text, -1)
}

// SplitWords returns the words of text in order of appearance, sentence by
// sentence. Case is preserved.
func SplitWords(text string) []string {
	words := make([]string, 0, len(text)/6)
	for _, sentence := range SplitSentences(text) {
		if sentence == "" {
			continue
		}
		words = append(words, wordPattern.FindAllString(sentence, -1)...)
	}
	return words
}

// IsWord reports whether s is exactly one word as SplitWords would extract it.
func IsWord(s string) bool {
	loc := wordPattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
