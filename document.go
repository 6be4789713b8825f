package irtoy

import (
	"fmt"
	"path"
)

// Field names the text column of a Document that scoring reads from.
type Field string

const (
	FieldText   Field = "text"
	FieldHeader Field = "header"
	FieldBody   Field = "body"
)

// Document is one loaded file. Header and Body are only set by the split loader.
type Document struct {
	Filepath string
	Filename string
	Text     string
	Header   string
	Body     string
}

// Name returns filepath/filename.
func (d Document) Name() string {
	return path.Join(d.Filepath, d.Filename)
}

// Value returns the content of field f.
func (d Document) Value(f Field) (string, error) {
	switch f {
	case FieldText:
		return d.Text, nil
	case FieldHeader:
		return d.Header, nil
	case FieldBody:
		return d.Body, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// with returns a copy of d with field f replaced by v.
func (d Document) with(f Field, v string) (Document, error) {
	switch f {
	case FieldText:
		d.Text = v
	case FieldHeader:
		d.Header = v
	case FieldBody:
		d.Body = v
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return d, nil
}

// Corpus is an ordered collection of documents, addressed by position.
type Corpus []Document

// Validate reports ErrUnknownField for anything but the three known fields.
func (f Field) Validate() error {
	switch f {
	case FieldText, FieldHeader, FieldBody:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Texts returns field f of every document, in corpus order.
func (c Corpus) Texts(f Field) ([]string, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	out := make([]string, len(c))
	for i, d := range c {
		v, err := d.Value(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Names returns Name() of every document, in corpus order.
func (c Corpus) Names() []string {
	out := make([]string, len(c))
	for i, d := range c {
		out[i] = d.Name()
	}
	return out
}
