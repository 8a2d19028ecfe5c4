package format

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dhamidi/jcomb/jsonc"
)

// TextEncoder writes values in the syntax the parser accepts. Strings are
// written between quotes without escaping, matching how they are parsed.
type TextEncoder struct {
	w     io.Writer
	opts  options
	value jsonc.Value
}

func NewTextEncoder(w io.Writer, opts ...Option) *TextEncoder {
	return &TextEncoder{w: w, opts: newOptions(opts)}
}

func (e *TextEncoder) Encode(v jsonc.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeText(&sb, e.value, e.opts.indent, 0)
	return []byte(sb.String()), nil
}

// Show renders v on a single line. Parsing the result yields a value
// equal to v.
func Show(v jsonc.Value) string {
	var sb strings.Builder
	writeText(&sb, v, "", 0)
	return sb.String()
}

func writeText(sb *strings.Builder, v jsonc.Value, indent string, depth int) {
	switch v := v.(type) {
	case jsonc.Null:
		sb.WriteString("null")
	case jsonc.Boolean:
		sb.WriteString(strconv.FormatBool(bool(v)))
	case jsonc.Number:
		sb.WriteString(formatNumber(float64(v)))
	case jsonc.String:
		sb.WriteByte('"')
		sb.WriteString(string(v))
		sb.WriteByte('"')
	case jsonc.Array:
		sb.WriteByte('[')
		for i, item := range v {
			writeSeparator(sb, i, indent, depth+1)
			writeText(sb, item, indent, depth+1)
		}
		writeClose(sb, len(v), indent, depth)
		sb.WriteByte(']')
	case jsonc.Object:
		sb.WriteByte('{')
		for i, m := range v {
			writeSeparator(sb, i, indent, depth+1)
			sb.WriteByte('"')
			sb.WriteString(m.Key)
			sb.WriteString(`": `)
			writeText(sb, m.Value, indent, depth+1)
		}
		writeClose(sb, len(v), indent, depth)
		sb.WriteByte('}')
	}
}

func writeSeparator(sb *strings.Builder, i int, indent string, depth int) {
	if i > 0 {
		sb.WriteByte(',')
		if indent == "" {
			sb.WriteByte(' ')
		}
	}
	if indent != "" {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(indent, depth))
	}
}

func writeClose(sb *strings.Builder, n int, indent string, depth int) {
	if n > 0 && indent != "" {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(indent, depth))
	}
}

// formatNumber prints integral values without an exponent up to 1e21 and
// everything else in the shortest form that reads back exactly.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
