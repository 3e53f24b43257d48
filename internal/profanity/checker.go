package profanity

import (
	"slices"
	"strings"
	"unicode"
)

// Marks tracker runes that are already attributed to a candidate.
const sentinel = '*'

// matchSpan is a half-open rune range [start, end) in the tracker and the
// enclosing word found there.
type matchSpan struct {
	start int
	end   int
	word  string
}

// Detect returns every banned word or phrase that occurs as a complete word in
// sentence, in the order they were confirmed (longest candidate first).
//
// Phrases (entries with a space) are accepted on any literal occurrence. Single
// words must be bounded by whitespace, punctuation or the ends of the sentence,
// so "cunt" does not match inside "Scunthorpe".
//
// If removePartialMatches is set, a confirmed entry that is a substring of
// another confirmed entry is dropped ("twat" when "twatting" was also found).
func Detect(sentence string, bannedWords []string, removePartialMatches bool) []string {
	if sentence == "" {
		return []string{}
	}

	folded := fold(sentence)
	normalized := strings.NewReplacer(".", "", ",", "").Replace(folded)

	candidates := []string{}
	for _, banned := range bannedWords {
		word := fold(banned)
		if strings.Contains(normalized, word) {
			candidates = append(candidates, word)
		}
	}

	filtered := filterCompleteWords([]rune(folded), candidates)

	if removePartialMatches {
		filtered = slices.DeleteFunc(slices.Clone(filtered), func(x string) bool {
			return slices.ContainsFunc(filtered, func(y string) bool {
				return x != y && strings.Contains(y, x)
			})
		})
	}

	return dedupe(filtered)
}

// ContainsProfanity reports whether Detect finds anything in sentence.
func ContainsProfanity(sentence string, bannedWords []string) bool {
	return len(Detect(sentence, bannedWords, false)) > 0
}

func filterCompleteWords(tracker []rune, candidates []string) []string {
	slices.SortStableFunc(candidates, func(a, b string) int {
		return len([]rune(b)) - len([]rune(a))
	})

	filtered := []string{}
	for _, word := range candidates {
		if strings.Contains(word, " ") {
			filtered = append(filtered, word)
			tracker = []rune(strings.ReplaceAll(string(tracker), word, " "))
			continue
		}

		needle := []rune(word)
		for {
			idx := indexRunes(tracker, needle)
			if idx < 0 {
				break
			}

			span := completeWord(tracker, idx, idx+len(needle))
			accepted := span.word == word
			if accepted {
				filtered = append(filtered, word)
			}

			// The sentinel counts as punctuation, so the whole enclosing word
			// is consumed, never just the match.
			mask(tracker, span.start, span.end)
			if accepted {
				break
			}
		}
	}

	return filtered
}

// completeWord widens the match [start, end) to the word that encloses it.
func completeWord(tracker []rune, start, end int) matchSpan {
	for start > 0 && !isBoundary(tracker[start-1]) {
		start--
	}
	for end < len(tracker) && !isBoundary(tracker[end]) {
		end++
	}

	return matchSpan{start: start, end: end, word: fold(string(tracker[start:end]))}
}

func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

func mask(tracker []rune, start, end int) {
	for i := start; i < end; i++ {
		tracker[i] = sentinel
	}
}

func indexRunes(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// fold lower-cases rune by rune, so the result has the same rune count as s.
func fold(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
