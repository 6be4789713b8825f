package irtoy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Corpus layouts understood by Run.
const (
	LayoutFlat  = "flat"  // ReadFiles
	LayoutSplit = "split" // ProcessFiles
)

// Normalizer names accepted in Config.
const (
	NormalizerNone  = "none"
	NormalizerLemma = "lemma"
	NormalizerStem  = "stem"
)

// CorpusConfig says where and how to load documents.
type CorpusConfig struct {
	Dir    string `yaml:"dir"`
	Layout string `yaml:"layout"`
	HTML   bool   `yaml:"html"`
}

// Config drives Run and NewPipeline.
type Config struct {
	Corpus     CorpusConfig `yaml:"corpus"`
	Field      Field        `yaml:"field"`
	Normalizer string       `yaml:"normalizer"`
	Lowercase  bool         `yaml:"lowercase"`
	Stopwords  bool         `yaml:"stopwords"`
	Log        LogConfig    `yaml:"log"`
}

// DefaultConfig scores the raw text of a flat directory with no normalization.
func DefaultConfig() Config {
	return Config{
		Corpus:     CorpusConfig{Dir: ".", Layout: LayoutFlat},
		Field:      FieldText,
		Normalizer: NormalizerNone,
		Log:        LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	if _, err := normalizerFor(c.Normalizer); err != nil {
		return err
	}
	switch c.Corpus.Layout {
	case LayoutFlat, LayoutSplit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayout, c.Corpus.Layout)
	}
	return c.Log.Validate()
}

func normalizerFor(name string) (Normalizer, error) {
	switch name {
	case NormalizerNone, "":
		return nil, nil
	case NormalizerLemma:
		return Lemmatize, nil
	case NormalizerStem:
		return Stem, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNormalizer, name)
}
