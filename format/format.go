// Package format renders parsed values as text.
package format

import (
	"encoding"

	"github.com/dhamidi/jcomb/jsonc"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v jsonc.Value) error
}

type Option func(*options)

type options struct {
	indent string
}

// WithIndent renders containers over several lines, indenting each level
// by indent. The default is a single line.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
