package jsonc

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindString = map[Kind]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	return kindString[k]
}

// Value is a parsed JSON value: Null, Boolean, Number, String, Array or Object.
type Value interface {
	Kind() Kind
}

type Null struct{}

type Boolean bool

// Number keeps the decoded float; integer and fractional spellings of the
// same number are indistinguishable.
type Number float64

// String holds the text between the quotes as written.
type String string

type Array []Value

// Object keeps members in source order, duplicate keys included.
type Object []Member

type Member struct {
	Key   string
	Value Value
}

func (Null) Kind() Kind    { return KindNull }
func (Boolean) Kind() Kind { return KindBoolean }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }
func (Array) Kind() Kind   { return KindArray }
func (Object) Kind() Kind  { return KindObject }

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// All returns the values of every member named key, in order.
func (o Object) All(key string) []Value {
	var vs []Value
	for _, m := range o {
		if m.Key == key {
			vs = append(vs, m.Value)
		}
	}
	return vs
}

// Keys returns member keys in order, repeating duplicates.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case Object:
		b, ok := b.(Object)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Key != b[i].Key || !Equal(a[i].Value, b[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
