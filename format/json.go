package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/jcomb/jsonc"
)

// JSONEncoder writes strict JSON: comments are gone, strings are escaped,
// and object members keep their order, duplicates included.
type JSONEncoder struct {
	w     io.Writer
	opts  options
	value jsonc.Value
}

func NewJSONEncoder(w io.Writer, opts ...Option) *JSONEncoder {
	return &JSONEncoder{w: w, opts: newOptions(opts)}
}

func (e *JSONEncoder) Encode(v jsonc.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, e.value); err != nil {
		return nil, err
	}
	if e.opts.indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", e.opts.indent); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v jsonc.Value) error {
	switch v := v.(type) {
	case jsonc.Null:
		buf.WriteString("null")
	case jsonc.Boolean:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case jsonc.Number:
		data, err := json.Marshal(float64(v))
		if err != nil {
			return fmt.Errorf("encode number: %w", err)
		}
		buf.Write(data)
	case jsonc.String:
		return writeJSONString(buf, string(v))
	case jsonc.Array:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case jsonc.Object:
		buf.WriteByte('{')
		for i, m := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("encode: unsupported value %T", v)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode string: %w", err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
