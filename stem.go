package irtoy

import (
	"github.com/kljensen/snowball/english"
)

// Stem is the snowball English stemmer. It lower-cases its input. Stopword
// handling is left to RemoveStopwords, so stopwords are stemmed too.
func Stem(w string) string { return english.Stem(w, true) }
