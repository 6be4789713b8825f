package irtoy

import (
	"strings"
	"unicode/utf8"
)

func isVowel(r string) bool {
	switch r {
	case "a", "e", "i", "o", "u":
		return true
	}
	return false
}

// lastRunes returns up to k trailing runes of word, last rune first, and the
// byte offset each one starts at. An invalid byte counts as one rune and is
// returned as-is.
func lastRunes(word string, k int) (runes []string, starts []int) {
	end := len(word)
	for i := 0; i < k && end > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(word[:end])
		runes = append(runes, word[end-size:end])
		starts = append(starts, end-size)
		end -= size
	}
	return runes, starts
}

// Lemmatize reduces word to an approximate root by stripping one suffix.
// Rules are tried in order and the first match wins:
//
//	-ns             drop "ns"
//	-s              drop "s"
//	-ing (len > 5)  collapse a doubled consonant before "ing", else drop "ing"
//	-ly  (len > 4)  drop "ly"
//	-ed  (len > 3)  collapse a doubled consonant before "ed", else drop "ed"
//
// Lengths count runes. Bytes that are not part of a stripped suffix are
// kept unchanged, valid UTF-8 or not.
//
// The result is not always a fixed point: Lemmatize("glass") is "glas",
// and Lemmatize("glas") is "gla".
func Lemmatize(word string) string {
	n := utf8.RuneCountInString(word)
	end := len(word) // all suffixes are ASCII, so they can be cut by byte count

	switch {
	case strings.HasSuffix(word, "ns"):
		return word[:end-2]

	case strings.HasSuffix(word, "s"):
		return word[:end-1]

	case strings.HasSuffix(word, "ing") && n > 5:
		r, start := lastRunes(word, 5)
		// "running" -> "runing"
		if r[3] == r[4] && !isVowel(r[4]) {
			return word[:start[3]] + word[end-3:]
		}
		if isVowel(r[2]) {
			return word[:end-3]
		}
		return word[:end-2]

	case strings.HasSuffix(word, "ly") && n > 4:
		return word[:end-2]

	case strings.HasSuffix(word, "ed") && n > 3:
		r, start := lastRunes(word, 4)
		// "stopped" -> "stoped"
		if r[2] == r[3] && !isVowel(r[3]) {
			return word[:start[2]] + word[end-2:]
		}
		return word[:end-2]
	}
	return word
}
