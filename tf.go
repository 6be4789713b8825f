package irtoy

import (
	"math"
	"sort"
	"strings"
)

// Terms splits text on single spaces. Runs of spaces yield empty terms.
func Terms(text string) []string {
	return strings.Split(text, " ")
}

// LogFrequency returns 1 + log2(count) for every term observed in text.
func LogFrequency(text string) map[string]float64 {
	counts := make(map[string]int)
	for _, t := range Terms(text) {
		counts[t]++
	}
	freq := make(map[string]float64, len(counts))
	for t, n := range counts {
		freq[t] = 1 + math.Log2(float64(n))
	}
	return freq
}

// TFTable holds log-scaled term frequencies, one map per document.
// A term missing from a document has no entry rather than a zero.
type TFTable []map[string]float64

// TermFrequency computes LogFrequency of field f for every document of c.
func TermFrequency(c Corpus, f Field) (TFTable, error) {
	texts, err := c.Texts(f)
	if err != nil {
		return nil, err
	}
	tf := make(TFTable, len(texts))
	for i, text := range texts {
		tf[i] = LogFrequency(text)
	}
	return tf, nil
}

// Get returns the frequency of term in document doc and whether it is present.
func (tf TFTable) Get(term string, doc int) (float64, bool) {
	if doc < 0 || doc >= len(tf) {
		return 0, false
	}
	v, ok := tf[doc][term]
	return v, ok
}

// Terms returns every term observed in any document, sorted.
func (tf TFTable) Terms() []string {
	seen := make(map[string]struct{})
	for _, doc := range tf {
		for t := range doc {
			seen[t] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
