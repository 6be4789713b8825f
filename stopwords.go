package irtoy

import "strings"

// Stopwords is a set of lower-case words dropped by RemoveStopwords.
type Stopwords map[string]struct{}

// NewStopwords builds a set from ws, lower-casing each entry.
func NewStopwords(ws ...string) Stopwords {
	m := make(Stopwords, len(ws))
	for _, w := range ws {
		m[strings.ToLower(w)] = struct{}{}
	}
	return m
}

// Contains reports whether w, compared case-insensitively, is in the set.
func (s Stopwords) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// DefaultStopwords returns a common English stopword set.
// No globals: caller injects or uses this helper.
func DefaultStopwords() Stopwords {
	return NewStopwords(
		"a", "an", "the", "and", "or", "but",
		"to", "in", "of", "on", "for", "with", "as", "at", "by", "from",
		"is", "are", "was", "were", "be", "been", "being",
		"this", "that", "these", "those", "it", "its", "itself",
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"they", "them", "their", "theirs", "themselves",
		"do", "does", "did", "doing",
		"have", "has", "had", "having",
		"not", "no", "nor", "only", "very", "too",
		"can", "could", "should", "would", "may", "might", "must", "will",
		"if", "then", "else", "than", "so", "because", "while", "when", "where",
		"about", "above", "below", "under", "over", "into", "out", "up", "down",
		"again", "further", "once", "here", "there",
	)
}
