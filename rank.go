package irtoy

import "sort"

// Rank returns the documents with a non-zero score for term, best first.
// Tie-break: if same score, order by name (ascending) to keep results deterministic.
func (t *ScoreTable) Rank(term string) []Hit {
	r, ok := t.Row(term)
	if !ok {
		return nil
	}

	var hits []Hit
	for doc, score := range r {
		if score == 0 {
			continue
		}
		hits = append(hits, Hit{Doc: doc, Name: t.Docs[doc], Score: score})
	}

	sort.Slice(hits, func(i, j int) bool {
		return lessHit(hits[i], hits[j])
	})
	return hits
}

// Top returns the k highest-scoring terms of document doc. Zero scores are
// left out; k <= 0 means no limit.
func (t *ScoreTable) Top(doc, k int) []TermScore {
	if doc < 0 || doc >= len(t.Docs) {
		return nil
	}

	var out []TermScore
	for i, term := range t.Terms {
		if s := t.Scores[i][doc]; s != 0 {
			out = append(out, TermScore{Term: term, Score: s})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return lessTermScore(out[i], out[j])
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
