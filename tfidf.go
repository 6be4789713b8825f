package irtoy

// TFIDF scores every term of field f in every document of c as tf * idf.
// Cells for terms a document does not contain are 0.
func TFIDF(c Corpus, f Field) (*ScoreTable, error) {
	tf, err := TermFrequency(c, f)
	if err != nil {
		return nil, err
	}
	idf, err := InverseDocumentFrequency(c, f)
	if err != nil {
		return nil, err
	}
	return Compose(tf, idf, c.Names()), nil
}

// Compose multiplies tf by idf. docs labels the columns and must have one
// entry per document in tf.
func Compose(tf TFTable, idf IDF, docs []string) *ScoreTable {
	table := newScoreTable(tf.Terms(), docs)
	for i, term := range table.Terms {
		w := idf[term]
		for doc := range docs {
			if v, ok := tf.Get(term, doc); ok {
				table.Scores[i][doc] = v * w
			}
		}
	}
	return table
}
