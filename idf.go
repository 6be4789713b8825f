package irtoy

import (
	"math"
	"strings"
)

// IDF maps a term to log2(N / n), where n counts the documents containing it.
type IDF map[string]float64

// InverseDocumentFrequency computes IDF over field f of c.
//
// A document counts as containing a term when the term occurs anywhere in
// its raw text, including inside a longer word. "cat" is therefore found in
// "category" even though TermFrequency never sees it as a term there.
func InverseDocumentFrequency(c Corpus, f Field) (IDF, error) {
	texts, err := c.Texts(f)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, ErrEmptyCorpus
	}

	idf := make(IDF)
	total := float64(len(texts))
	for _, text := range texts {
		for _, term := range Terms(text) {
			if _, done := idf[term]; done {
				continue
			}
			var n int
			for _, other := range texts {
				if strings.Contains(other, term) {
					n++
				}
			}
			idf[term] = math.Log2(total / float64(n))
		}
	}
	return idf, nil
}
