package irtoy

// Hit is a scored document for a single-term query.
type Hit struct {
	Doc   int
	Name  string
	Score float64
}

// lessHit orders two hits: higher score first; if scores are equal, name
// ascending, then corpus position, since names need not be unique.
func lessHit(a, b Hit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Doc < b.Doc
}

// TermScore is one term's score within a document.
type TermScore struct {
	Term  string
	Score float64
}

func lessTermScore(a, b TermScore) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Term < b.Term
}
