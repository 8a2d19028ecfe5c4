package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/jcomb/jsonc"
)

type DebugEncoder struct {
	w     io.Writer
	value jsonc.Value
}

func NewDebugEncoder(w io.Writer) *DebugEncoder {
	return &DebugEncoder{w: w}
}

func (e *DebugEncoder) Encode(v jsonc.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DebugEncoder) MarshalText() ([]byte, error) {
	return []byte(Debug(e.value) + "\n"), nil
}

// Debug renders the structure of v, naming each variant:
//
//	Object([("a", Number(1.0))])
func Debug(v jsonc.Value) string {
	var sb strings.Builder
	writeDebug(&sb, v)
	return sb.String()
}

func writeDebug(sb *strings.Builder, v jsonc.Value) {
	switch v := v.(type) {
	case jsonc.Null:
		sb.WriteString("Null")
	case jsonc.Boolean:
		sb.WriteString("Boolean(")
		sb.WriteString(strconv.FormatBool(bool(v)))
		sb.WriteByte(')')
	case jsonc.Number:
		sb.WriteString("Number(")
		sb.WriteString(debugNumber(float64(v)))
		sb.WriteByte(')')
	case jsonc.String:
		sb.WriteString("String(")
		sb.WriteString(strconv.Quote(string(v)))
		sb.WriteByte(')')
	case jsonc.Array:
		sb.WriteString("Array([")
		for i, item := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDebug(sb, item)
		}
		sb.WriteString("])")
	case jsonc.Object:
		sb.WriteString("Object([")
		for i, m := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('(')
			sb.WriteString(strconv.Quote(m.Key))
			sb.WriteString(", ")
			writeDebug(sb, m.Value)
			sb.WriteByte(')')
		}
		sb.WriteString("])")
	default:
		sb.WriteString("<nil>")
	}
}

func debugNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
