package irtoy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Skip records a file the split loader left out of the corpus.
type Skip struct {
	Filepath string
	Filename string
	Reason   error
}

// LoadResult is the outcome of ProcessFiles: the loaded corpus plus every
// file that was skipped on the way.
type LoadResult struct {
	Corpus  Corpus
	Skipped []Skip
}

// Loader reads text files from disk into a Corpus.
type Loader struct {
	Log zerolog.Logger

	// HTML reduces each file to its visible text before it is stored.
	HTML bool
}

// NewLoader creates a loader that logs to log.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{Log: log}
}

// ReadFiles loads every regular file directly inside dir, sorted by name.
// Each document's Filepath is dir and its Text the trimmed file content.
func (l *Loader) ReadFiles(dir string) (Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	corpus := make(Corpus, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			l.Log.Debug().Str("dir", dir).Str("entry", e.Name()).Msg("skipping subdirectory")
			continue
		}
		text, err := l.read(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		corpus = append(corpus, Document{
			Filepath: dir,
			Filename: e.Name(),
			Text:     l.visible(text),
		})
	}

	l.Log.Info().Str("dir", dir).Int("documents", len(corpus)).Msg("corpus loaded")
	return corpus, nil
}

// ProcessFiles loads the files one level below dir: every regular file of
// every subdirectory. Content is split on the first blank line into Header
// and Body; with HTML set, each part is reduced to its visible text after
// the split. Files without a blank line are reported in Skipped, not as an
// error. Each document's Filepath is the name of its subdirectory.
func (l *Loader) ProcessFiles(dir string) (LoadResult, error) {
	var res LoadResult

	subdirs, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, sub := range subdirs {
		if !sub.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, sub.Name()))
		if err != nil {
			return res, fmt.Errorf("read dir %s: %w", filepath.Join(dir, sub.Name()), err)
		}

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			text, err := l.read(filepath.Join(dir, sub.Name(), f.Name()))
			if err != nil {
				return res, err
			}

			header, body, ok := strings.Cut(text, "\n\n")
			if !ok {
				skip := Skip{
					Filepath: sub.Name(),
					Filename: f.Name(),
					Reason:   fmt.Errorf("%s/%s: %w", sub.Name(), f.Name(), ErrNoSeparator),
				}
				res.Skipped = append(res.Skipped, skip)
				l.Log.Warn().Err(skip.Reason).Msg("skipping file")
				continue
			}

			res.Corpus = append(res.Corpus, Document{
				Filepath: sub.Name(),
				Filename: f.Name(),
				Text:     l.visible(text),
				Header:   l.visible(header),
				Body:     l.visible(body),
			})
		}
	}

	l.Log.Info().
		Str("dir", dir).
		Int("documents", len(res.Corpus)).
		Int("skipped", len(res.Skipped)).
		Msg("corpus loaded")
	return res, nil
}

func (l *Loader) read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (l *Loader) visible(s string) string {
	if !l.HTML {
		return s
	}
	return ExtractText([]byte(s))
}

var defaultLoader = NewLoader(zerolog.Nop())

// ReadFiles loads dir with a loader that does not log.
func ReadFiles(dir string) (Corpus, error) {
	return defaultLoader.ReadFiles(dir)
}

// ProcessFiles loads dir one level deep with a loader that does not log.
func ProcessFiles(dir string) (LoadResult, error) {
	return defaultLoader.ProcessFiles(dir)
}
