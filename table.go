package irtoy

// ScoreTable is a dense term x document matrix. Rows follow Terms,
// columns follow the corpus order recorded in Docs.
type ScoreTable struct {
	Terms  []string
	Docs   []string
	Scores [][]float64

	row map[string]int
}

func newScoreTable(terms, docs []string) *ScoreTable {
	t := &ScoreTable{
		Terms:  terms,
		Docs:   docs,
		Scores: make([][]float64, len(terms)),
		row:    make(map[string]int, len(terms)),
	}
	for i, term := range terms {
		t.Scores[i] = make([]float64, len(docs))
		t.row[term] = i
	}
	return t
}

// Dims returns the number of rows (terms) and columns (documents).
func (t *ScoreTable) Dims() (int, int) {
	return len(t.Terms), len(t.Docs)
}

// Score returns the cell for term and document index doc, or 0 when either
// is out of range.
func (t *ScoreTable) Score(term string, doc int) float64 {
	r, ok := t.Row(term)
	if !ok || doc < 0 || doc >= len(r) {
		return 0
	}
	return r[doc]
}

// Row returns the scores of term across all documents.
func (t *ScoreTable) Row(term string) ([]float64, bool) {
	i, ok := t.row[term]
	if !ok {
		return nil, false
	}
	return t.Scores[i], true
}

// Column returns every term's score in document doc.
func (t *ScoreTable) Column(doc int) map[string]float64 {
	if doc < 0 || doc >= len(t.Docs) {
		return nil
	}
	col := make(map[string]float64, len(t.Terms))
	for i, term := range t.Terms {
		col[term] = t.Scores[i][doc]
	}
	return col
}
