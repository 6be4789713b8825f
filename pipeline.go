package irtoy

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Pipeline prepares a corpus according to a Config and scores it.
type Pipeline struct {
	field     Field
	normalize Normalizer // nil: terms kept as they are
	stop      Stopwords  // nil: no stopword filtering
	log       zerolog.Logger
}

// NewPipeline validates the scoring part of cfg. Corpus settings are not
// consulted.
func NewPipeline(cfg Config, log zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Field.Validate(); err != nil {
		return nil, err
	}
	norm, err := normalizerFor(cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{field: cfg.Field, log: log}
	switch {
	case cfg.Lowercase && norm != nil:
		p.normalize = Chain(strings.ToLower, norm)
	case cfg.Lowercase:
		p.normalize = strings.ToLower
	default:
		p.normalize = norm
	}
	if cfg.Stopwords {
		p.stop = DefaultStopwords()
	}
	return p, nil
}

// Prepare returns a copy of c with stopwords removed and terms normalized.
func (p *Pipeline) Prepare(c Corpus) (Corpus, error) {
	var err error
	if p.stop != nil {
		if c, err = RemoveStopwords(c, p.field, p.stop); err != nil {
			return nil, err
		}
	}
	if p.normalize != nil {
		if c, err = NormalizeCorpus(c, p.field, p.normalize); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Score prepares c and computes its TF-IDF table.
func (p *Pipeline) Score(c Corpus) (*ScoreTable, error) {
	prepared, err := p.Prepare(c)
	if err != nil {
		return nil, err
	}
	table, err := TFIDF(prepared, p.field)
	if err != nil {
		return nil, err
	}

	terms, docs := table.Dims()
	p.log.Debug().
		Str("field", string(p.field)).
		Int("terms", terms).
		Int("documents", docs).
		Msg("tf-idf computed")
	return table, nil
}

// Run loads the corpus described by cfg and scores it. The LoadResult
// carries the files skipped by the split layout.
func Run(cfg Config) (*ScoreTable, LoadResult, error) {
	var res LoadResult
	if err := cfg.Validate(); err != nil {
		return nil, res, err
	}

	log := NewLogger(cfg.Log)
	loader := NewLoader(log)
	loader.HTML = cfg.Corpus.HTML

	var err error
	switch cfg.Corpus.Layout {
	case LayoutSplit:
		res, err = loader.ProcessFiles(cfg.Corpus.Dir)
	default:
		res.Corpus, err = loader.ReadFiles(cfg.Corpus.Dir)
	}
	if err != nil {
		return nil, res, fmt.Errorf("load corpus: %w", err)
	}

	p, err := NewPipeline(cfg, log)
	if err != nil {
		return nil, res, err
	}
	table, err := p.Score(res.Corpus)
	return table, res, err
}
