package jsonc

import (
	"io"

	p "github.com/dhamidi/jcomb/combinator"
)

// ParseDocument parses text as exactly one value, optionally surrounded by
// white space and line comments. On success the remainder is empty.
func ParseDocument(text string) p.Result[Value] {
	return document(text)
}

// Option configures Decode.
type Option func(*decoder)

type decoder struct {
	file string
}

// WithFile names the input in error messages.
func WithFile(path string) Option {
	return func(d *decoder) {
		d.file = path
	}
}

// Decode reads all of r and parses it as a document. Parse failures are
// returned as *ParseError.
func Decode(r io.Reader, opts ...Option) (Value, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.decode(string(data))
}

// DecodeString is Decode for in-memory text.
func DecodeString(text string, opts ...Option) (Value, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d.decode(text)
}

func (d *decoder) decode(text string) (Value, error) {
	res := ParseDocument(text)
	if v, ok := res.Get(); ok {
		return v, nil
	}
	return nil, newParseError(d.file, text, res.Diagnostic)
}
