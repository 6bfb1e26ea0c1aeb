package jsondiff

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind defines all of the atoms in our universe, or the types of data we
// will encounter while comparing two trees
type Kind uint8

const (
	// KindNull is the zero Kind, a zero Value is null
	KindNull Kind = iota
	// KindBool is true or false
	KindBool
	// KindNumber is an integer or floating point number
	KindNumber
	// KindString is a string of text
	KindString
	// KindArray is an ordered list of values
	KindArray
	// KindObject is a mapping of unique string keys to values
	KindObject
)

// String implements the fmt.Stringer interface
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
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// numClass separates integer & float numbers, which are only equal under
// AssumeFloat numeric comparison
type numClass uint8

const (
	numInt numClass = iota
	numUint
	numFloat
)

// Value is an immutable JSON-shaped tree. The zero Value is null. Values are
// built with the constructor functions in this package & are safe to share
// between goroutines
type Value struct {
	kind Kind
	num  numClass
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer number value
func Int(i int64) Value { return Value{kind: KindNumber, num: numInt, i: i} }

// Uint returns an integer number value. unsigned integers that fit in an
// int64 are stored as one, so Uint(1) and Int(1) are identical
func Uint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Value{kind: KindNumber, num: numUint, u: u}
}

// Float returns a floating point number value. JSON has no representation
// for NaN or infinities, FromInterface rejects them
func Float(f float64) Value { return Value{kind: KindNumber, num: numFloat, f: f} }

// String returns a string value
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array of the given elements. the passed-in slice is copied
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// Object returns an object with the given fields. the passed-in map is copied
func Object(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the type of data held by v
func (v Value) Kind() Kind { return v.kind }

// IsNull is true when v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsFloat is true when v is a number constructed from a float
func (v Value) IsFloat() bool { return v.kind == KindNumber && v.num == numFloat }

// AsBool returns the boolean held by v, ok is false if v is not a boolean
func (v Value) AsBool() (b, ok bool) { return v.b, v.kind == KindBool }

// AsString returns the text held by v, ok is false if v is not a string
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the integer held by v. ok is false if v is not an integer
// number or doesn't fit in an int64
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindNumber && v.num == numInt
}

// AsFloat converts any number to a float64. ok is false if v is not a number
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.float(), true
}

func (v Value) float() float64 {
	switch v.num {
	case numInt:
		return float64(v.i)
	case numUint:
		return float64(v.u)
	default:
		return v.f
	}
}

// Len is the number of children of an array or object, zero for all other kinds
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns the i-th element of an array
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Field returns the value at key of an object
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[key]
	return f, ok
}

// Elems returns a copy of the elements of an array
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	elems := make([]Value, len(v.arr))
	copy(elems, v.arr)
	return elems
}

// Keys returns the keys of an object in sorted order
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return sortedKeys(v.obj)
}

// Equal reports whether v & o are structurally identical, using strict
// numeric comparison
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}

// String renders v as compact JSON
func (v Value) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

// MarshalJSON implements the json.Marshaler interface. object keys are written
// in sorted order, and floats with no fractional part keep a trailing ".0" so
// integers and floats remain distinguishable in output
func (v Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	writeJSON(buf, v)
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		switch v.num {
		case numInt:
			buf.WriteString(strconv.FormatInt(v.i, 10))
		case numUint:
			buf.WriteString(strconv.FormatUint(v.u, 10))
		default:
			buf.WriteString(formatFloat(v.f))
		}
	case KindString:
		writeJSONString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, el := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSON(buf, el)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range sortedKeys(v.obj) {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, key)
			buf.WriteByte(':')
			writeJSON(buf, v.obj[key])
		}
		buf.WriteByte('}')
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// encoding a string never fails
	_ = enc.Encode(s)
	// Encode terminates with a newline
	buf.Truncate(buf.Len() - 1)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	verb := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		verb = 'e'
	}
	str := strconv.FormatFloat(f, verb, -1, 64)
	if verb == 'f' && !strings.ContainsRune(str, '.') {
		str += ".0"
	}
	return str
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
