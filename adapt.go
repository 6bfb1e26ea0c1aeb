package jsondiff

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnrepresentable is the base error for values FromInterface can't turn
// into a tree. conversion errors wrap it & name the failing path
var ErrUnrepresentable = errors.New("value cannot be represented as a json tree")

// FromInterface builds a Value from decoded go data. it accepts the types
// encoding/json decodes into:
//
//	map[string]interface{}, []interface{}, string, float64, json.Number, bool, nil
//
// plus every go integer & float kind, map[interface{}]interface{} with string
// keys, and Value itself. anything else is round-tripped through
// encoding/json
func FromInterface(v interface{}) (Value, error) {
	return fromInterface(v, Path{})
}

func fromInterface(v interface{}, path Path) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return *x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return fromFloat(float64(x), path)
	case float64:
		return fromFloat(x, path)
	case json.Number:
		return fromNumber(x, path)
	case []interface{}:
		arr := make([]Value, len(x))
		for i, el := range x {
			val, err := fromInterface(el, path.Index(i))
			if err != nil {
				return Value{}, err
			}
			arr[i] = val
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]interface{}:
		obj := make(map[string]Value, len(x))
		for key, el := range x {
			val, err := fromInterface(el, path.Field(key))
			if err != nil {
				return Value{}, err
			}
			obj[key] = val
		}
		return Value{kind: KindObject, obj: obj}, nil
	case map[interface{}]interface{}:
		obj := make(map[string]Value, len(x))
		for k, el := range x {
			key, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: %s: object key %v is a %T, not a string", ErrUnrepresentable, path, k, k)
			}
			val, err := fromInterface(el, path.Field(key))
			if err != nil {
				return Value{}, err
			}
			obj[key] = val
		}
		return Value{kind: KindObject, obj: obj}, nil
	}

	return fromMarshaler(v, path)
}

func fromFloat(f float64, path Path) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %s: %v is not a finite number", ErrUnrepresentable, path, f)
	}
	return Float(f), nil
}

// fromNumber keeps integers exact, trying the widest integer types before
// falling back to float
func fromNumber(n json.Number, path Path) (Value, error) {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Uint(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: invalid number %q", ErrUnrepresentable, path, s)
	}
	return fromFloat(f, path)
}

// fromMarshaler handles structs, typed maps & slices, and custom marshalers
// by encoding to JSON & decoding into generic data
func fromMarshaler(v interface{}, path Path) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: %T: %w", ErrUnrepresentable, path, v, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return Value{}, fmt.Errorf("%w: %s: %T: %w", ErrUnrepresentable, path, v, err)
	}
	return fromInterface(generic, path)
}

// Interface converts v back to plain go data: nil, bool, string, int64,
// uint64, float64, []interface{} and map[string]interface{}
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		switch v.num {
		case numInt:
			return v.i
		case numUint:
			return v.u
		default:
			return v.f
		}
	case KindString:
		return v.s
	case KindArray:
		arr := make([]interface{}, len(v.arr))
		for i, el := range v.arr {
			arr[i] = el.Interface()
		}
		return arr
	case KindObject:
		obj := make(map[string]interface{}, len(v.obj))
		for k, el := range v.obj {
			obj[k] = el.Interface()
		}
		return obj
	default:
		return nil
	}
}
