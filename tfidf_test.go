package irtoy

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func textCorpus(texts ...string) Corpus {
	c := make(Corpus, len(texts))
	for i, s := range texts {
		c[i] = Document{Filepath: "mem", Filename: string(rune('a' + i)), Text: s}
	}
	return c
}

// --- TestTermFrequency ---

func TestLogFrequency(t *testing.T) {
	got := LogFrequency("a a b")
	if len(got) != 2 || !near(got["a"], 2) || !near(got["b"], 1) {
		t.Fatalf("LogFrequency(a a b)=%v; want a=2 b=1", got)
	}

	got = LogFrequency("x x x x")
	if !near(got["x"], 3) {
		t.Fatalf("LogFrequency x=%v; want 3", got["x"])
	}
}

func TestTermsSplitsOnSingleSpace(t *testing.T) {
	got := Terms("a  b")
	want := []string{"a", "", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Terms=%#v; want %#v", got, want)
	}
}

func TestTermFrequency(t *testing.T) {
	tf, err := TermFrequency(textCorpus("a a b", "b c"), FieldText)
	if err != nil {
		t.Fatalf("TermFrequency error: %v", err)
	}
	if v, ok := tf.Get("a", 0); !ok || !near(v, 2) {
		t.Fatalf("tf[a,0]=%v,%v; want 2,true", v, ok)
	}
	// absent is not zero
	if v, ok := tf.Get("a", 1); ok {
		t.Fatalf("tf[a,1] should be absent; got %v", v)
	}
	if _, ok := tf.Get("a", 5); ok {
		t.Fatalf("out of range doc should be absent")
	}
	if got, want := tf.Terms(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Terms=%v; want %v", got, want)
	}
}

func TestTermFrequencyUnknownField(t *testing.T) {
	if _, err := TermFrequency(textCorpus("a"), Field("title")); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("want ErrUnknownField; got %v", err)
	}
	if _, err := TermFrequency(nil, Field("title")); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("want ErrUnknownField on empty corpus; got %v", err)
	}
}

// --- TestInverseDocumentFrequency ---

func TestInverseDocumentFrequency(t *testing.T) {
	idf, err := InverseDocumentFrequency(textCorpus("t u", "u"), FieldText)
	if err != nil {
		t.Fatalf("IDF error: %v", err)
	}
	if !near(idf["t"], 1) {
		t.Fatalf("idf[t]=%v; want 1", idf["t"])
	}
	if !near(idf["u"], 0) {
		t.Fatalf("idf[u]=%v; want 0", idf["u"])
	}
	if len(idf) != 2 {
		t.Fatalf("idf has %d terms; want 2: %v", len(idf), idf)
	}
}

func TestInverseDocumentFrequencySubstring(t *testing.T) {
	// "cat" is contained in "category", so it counts for both documents.
	idf, err := InverseDocumentFrequency(textCorpus("cat", "category"), FieldText)
	if err != nil {
		t.Fatalf("IDF error: %v", err)
	}
	if !near(idf["cat"], 0) {
		t.Fatalf("idf[cat]=%v; want 0", idf["cat"])
	}
	if !near(idf["category"], 1) {
		t.Fatalf("idf[category]=%v; want 1", idf["category"])
	}
}

func TestInverseDocumentFrequencyEmpty(t *testing.T) {
	if _, err := InverseDocumentFrequency(Corpus{}, FieldText); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("want ErrEmptyCorpus; got %v", err)
	}
	if _, err := TFIDF(nil, FieldText); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("TFIDF want ErrEmptyCorpus; got %v", err)
	}
}

// --- TestTFIDF ---

func TestTFIDF(t *testing.T) {
	c := textCorpus("cat dog", "dog dog")
	table, err := TFIDF(c, FieldText)
	if err != nil {
		t.Fatalf("TFIDF error: %v", err)
	}

	if rows, cols := table.Dims(); rows != 2 || cols != 2 {
		t.Fatalf("Dims=%d,%d; want 2,2", rows, cols)
	}
	if !reflect.DeepEqual(table.Terms, []string{"cat", "dog"}) {
		t.Fatalf("Terms=%v", table.Terms)
	}
	if !reflect.DeepEqual(table.Docs, []string{"mem/a", "mem/b"}) {
		t.Fatalf("Docs=%v", table.Docs)
	}

	want := map[string][]float64{
		"cat": {1, 0}, // tf 1, idf log2(2/1)
		"dog": {0, 0}, // idf log2(2/2)
	}
	for term, row := range want {
		got, ok := table.Row(term)
		if !ok {
			t.Fatalf("missing row %q", term)
		}
		for doc := range row {
			if got[doc] != row[doc] {
				t.Fatalf("tfidf[%s,%d]=%v; want %v", term, doc, got[doc], row[doc])
			}
		}
	}
}

func TestTFIDFZeroFill(t *testing.T) {
	c := textCorpus("apple apple pear", "kiwi", "pear kiwi kiwi")
	table, err := TFIDF(c, FieldText)
	if err != nil {
		t.Fatalf("TFIDF error: %v", err)
	}

	// apple: tf 2 in doc 0, idf log2(3)
	if got, want := table.Score("apple", 0), 2*math.Log2(3); !near(got, want) {
		t.Fatalf("apple,0=%v; want %v", got, want)
	}
	// kiwi: tf 1+log2(2)=2 in doc 2, idf log2(3/2)
	if got, want := table.Score("kiwi", 2), 2*math.Log2(1.5); !near(got, want) {
		t.Fatalf("kiwi,2=%v; want %v", got, want)
	}
	for _, cell := range []struct {
		term string
		doc  int
	}{{"apple", 1}, {"apple", 2}, {"kiwi", 0}, {"pear", 1}} {
		if got := table.Score(cell.term, cell.doc); got != 0 {
			t.Fatalf("%s,%d=%v; want exactly 0", cell.term, cell.doc, got)
		}
	}

	if got := table.Score("missing", 0); got != 0 {
		t.Fatalf("unknown term should score 0; got %v", got)
	}
	if got := table.Score("apple", 9); got != 0 {
		t.Fatalf("unknown doc should score 0; got %v", got)
	}

	col := table.Column(1)
	if len(col) != 3 || !near(col["kiwi"], math.Log2(1.5)) || col["apple"] != 0 {
		t.Fatalf("Column(1)=%v", col)
	}
	if table.Column(-1) != nil {
		t.Fatalf("Column(-1) should be nil")
	}
}

func TestComposeDoesNotMutateInputs(t *testing.T) {
	tf := TFTable{{"a": 2}, {"b": 1}}
	idf := IDF{"a": 1, "b": 1}
	table := Compose(tf, idf, []string{"d0", "d1"})
	if table.Score("a", 0) != 2 || table.Score("b", 1) != 1 {
		t.Fatalf("Compose scores=%v", table.Scores)
	}
	if len(tf[0]) != 1 || len(tf[1]) != 1 {
		t.Fatalf("Compose must not fill the tf table: %v", tf)
	}
}

// --- TestRank ---

func TestRank(t *testing.T) {
	c := textCorpus("whale whale ship", "whale sea", "ship", "sea sea")
	table, err := TFIDF(c, FieldText)
	if err != nil {
		t.Fatalf("TFIDF error: %v", err)
	}

	hits := table.Rank("whale")
	if len(hits) != 2 {
		t.Fatalf("Rank(whale)=%#v; want 2 hits", hits)
	}
	if hits[0].Doc != 0 || hits[1].Doc != 1 || hits[0].Name != "mem/a" {
		t.Fatalf("Rank(whale) order=%#v", hits)
	}
	if hits[0].Score <= hits[1].Score {
		t.Fatalf("Rank(whale) not descending: %#v", hits)
	}

	// equal scores fall back to name order
	hits = table.Rank("ship")
	if len(hits) != 2 || hits[0].Name != "mem/a" || hits[1].Name != "mem/c" {
		t.Fatalf("Rank(ship)=%#v", hits)
	}

	if table.Rank("unknown") != nil {
		t.Fatalf("Rank(unknown) should be nil")
	}
}

func TestRankDuplicateNames(t *testing.T) {
	// same directory and file name, same score: corpus order decides
	c := Corpus{
		{Filepath: "news", Filename: "1.txt", Text: "whale"},
		{Filepath: "news", Filename: "1.txt", Text: "whale"},
		{Filepath: "news", Filename: "1.txt", Text: "whale"},
		{Filepath: "news", Filename: "0.txt", Text: "ship"},
	}
	table, err := TFIDF(c, FieldText)
	if err != nil {
		t.Fatalf("TFIDF error: %v", err)
	}
	for i := 0; i < 20; i++ {
		hits := table.Rank("whale")
		if len(hits) != 3 || hits[0].Doc != 0 || hits[1].Doc != 1 || hits[2].Doc != 2 {
			t.Fatalf("Rank(whale)=%#v; want docs 0,1,2", hits)
		}
	}

	if !lessHit(Hit{Doc: 1, Name: "x", Score: 1}, Hit{Doc: 2, Name: "x", Score: 1}) {
		t.Fatalf("lessHit should order equal hits by Doc")
	}
}

func TestTop(t *testing.T) {
	c := textCorpus("whale whale ship", "whale sea", "ship", "sea sea")
	table, err := TFIDF(c, FieldText)
	if err != nil {
		t.Fatalf("TFIDF error: %v", err)
	}

	top := table.Top(0, 1)
	if len(top) != 1 || top[0].Term != "whale" {
		t.Fatalf("Top(0,1)=%#v; want whale", top)
	}
	if all := table.Top(0, 0); len(all) != 2 {
		t.Fatalf("Top(0,0)=%#v; want 2 terms", all)
	}
	if table.Top(7, 3) != nil {
		t.Fatalf("Top out of range should be nil")
	}
}
