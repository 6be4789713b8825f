package irtoy

import "errors"

var (
	// ErrEmptyCorpus is returned when IDF is requested for a corpus with no documents.
	ErrEmptyCorpus = errors.New("irtoy: empty corpus")

	// ErrUnknownField is returned for a Field other than text, header or body.
	ErrUnknownField = errors.New("irtoy: unknown field")

	// ErrNoSeparator marks a file without a blank line between header and body.
	ErrNoSeparator = errors.New("irtoy: no header/body separator")

	ErrUnknownNormalizer = errors.New("irtoy: unknown normalizer")
	ErrUnknownLayout     = errors.New("irtoy: unknown corpus layout")
	ErrUnknownLogLevel   = errors.New("irtoy: unknown log level")
)
