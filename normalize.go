package irtoy

import (
	"strings"
)

// Normalizer rewrites a single term.
type Normalizer func(string) string

// Chain applies fns left to right.
func Chain(fns ...Normalizer) Normalizer {
	return func(w string) string {
		for _, fn := range fns {
			w = fn(w)
		}
		return w
	}
}

// NormalizeCorpus returns a copy of c where every term of field f is
// replaced by fn(term). Terms are split and rejoined on single spaces, so
// the term positions TermFrequency sees are unchanged.
func NormalizeCorpus(c Corpus, f Field, fn Normalizer) (Corpus, error) {
	return mapTerms(c, f, func(terms []string) []string {
		out := make([]string, len(terms))
		for i, t := range terms {
			out[i] = fn(t)
		}
		return out
	})
}

// RemoveStopwords returns a copy of c with stopwords and empty terms
// dropped from field f.
func RemoveStopwords(c Corpus, f Field, stop Stopwords) (Corpus, error) {
	return mapTerms(c, f, func(terms []string) []string {
		out := make([]string, 0, len(terms))
		for _, t := range terms {
			if t == "" || stop.Contains(t) {
				continue
			}
			out = append(out, t)
		}
		return out
	})
}

func mapTerms(c Corpus, f Field, fn func([]string) []string) (Corpus, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	out := make(Corpus, len(c))
	for i, d := range c {
		v, err := d.Value(f)
		if err != nil {
			return nil, err
		}
		nd, err := d.with(f, strings.Join(fn(Terms(v)), " "))
		if err != nil {
			return nil, err
		}
		out[i] = nd
	}
	return out, nil
}
