package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the underlying type of a cell Value.
type Kind int

const (
	// KindNull represents a null or absent cell.
	KindNull Kind = iota
	// KindBool represents a boolean cell.
	KindBool
	// KindNumber represents a numeric cell (stored as float64).
	KindNumber
	// KindString represents a string cell.
	KindString
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Value is a tagged variant over the cell types a result set can carry:
// null, boolean, number, or string. All type sniffing and coercion lives
// here so that filter, sort, export, and rendering share a single rule.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// From converts an arbitrary decoded value (as produced by encoding/json or
// similar loosely-typed sources) into a Value. Unknown types degrade to
// their fmt string form rather than failing; nested structures are treated
// as opaque strings for display and export purposes.
func From(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(val)
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	case int:
		return Number(float64(val))
	case int32:
		return Number(float64(val))
	case int64:
		return Number(float64(val))
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return Number(f)
		}
		return String(val.String())
	case string:
		return String(val)
	default:
		return String(fmt.Sprintf("%v", v))
	}
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// String returns the canonical coerced string form used for filtering and
// export: null becomes the empty string, booleans become "true"/"false", and
// numbers use the shortest decimal representation.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// Interface returns the value in its natural Go form: nil, bool, float64,
// or string. Useful for re-encoding rows as JSON.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	default:
		return nil
	}
}

// Number returns the numeric form of the value and whether the value is
// numeric. Non-numeric values report false; no string-to-number parsing is
// attempted here.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// Bool returns the boolean form of the value and whether the value is a
// boolean.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}
