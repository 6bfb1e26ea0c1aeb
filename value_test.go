package jsondiff

import (
	"math"
	"testing"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		description string
		value       Value
		expect      string
	}{
		{"null", Null(), "null"},
		{"zero value is null", Value{}, "null"},
		{"bool", Bool(true), "true"},
		{"int", Int(-3), "-3"},
		{"big uint", Uint(math.MaxUint64), "18446744073709551615"},
		{"integral float", Float(1), "1.0"},
		{"float", Float(1.5), "1.5"},
		{"large float", Float(1e21), "1e+21"},
		{"small float", Float(1e-7), "1e-07"},
		{"string", String("a \"quote\" & <tag>"), `"a \"quote\" & <tag>"`},
		{"array", Array(Int(1), Null(), String("x")), `[1,null,"x"]`},
		{"object keys sorted", Object(map[string]Value{"b": Array(Bool(true)), "a": Int(1)}), `{"a":1,"b":[true]}`},
		{"empty object", Object(nil), `{}`},
	}

	for _, c := range cases {
		if got := c.value.String(); got != c.expect {
			t.Errorf("%s: want: %s got: %s", c.description, c.expect, got)
		}
	}
}

func TestValueConstructorsCopy(t *testing.T) {
	elems := []Value{Int(1), Int(2)}
	arr := Array(elems...)
	elems[0] = Int(100)
	if got, _ := arr.Index(0); !got.Equal(Int(1)) {
		t.Errorf("array shares caller storage, got %s", got)
	}

	out := arr.Elems()
	out[1] = Int(200)
	if got, _ := arr.Index(1); !got.Equal(Int(2)) {
		t.Errorf("Elems exposes internal storage, got %s", got)
	}

	fields := map[string]Value{"a": Int(1)}
	obj := Object(fields)
	fields["a"] = Int(100)
	fields["b"] = Int(2)
	if obj.Len() != 1 {
		t.Errorf("object shares caller storage, len %d", obj.Len())
	}
	if got, _ := obj.Field("a"); !got.Equal(Int(1)) {
		t.Errorf("object shares caller storage, got %s", got)
	}
}

func TestValueAccessors(t *testing.T) {
	if Int(1).IsFloat() || !Float(1).IsFloat() {
		t.Error("IsFloat mismatch")
	}
	if i, ok := Uint(7).AsInt(); !ok || i != 7 {
		t.Errorf("expected small uint to be an int, got %d %t", i, ok)
	}
	if _, ok := Uint(math.MaxUint64).AsInt(); ok {
		t.Error("expected big uint not to fit an int")
	}
	if f, ok := Int(3).AsFloat(); !ok || f != 3 {
		t.Errorf("AsFloat mismatch: %f %t", f, ok)
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Errorf("AsString mismatch: %s %t", s, ok)
	}
	if _, ok := Int(1).AsString(); ok {
		t.Error("expected AsString to fail on a number")
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Error("AsBool mismatch")
	}
	if _, ok := Array().Index(0); ok {
		t.Error("expected out of range index to fail")
	}
	if _, ok := Int(1).Field("a"); ok {
		t.Error("expected Field on a number to fail")
	}

	obj := mustValue(`{"c":1,"a":2,"b":3}`)
	keys := obj.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys not sorted: %v", keys)
	}
	if obj.Kind() != KindObject || obj.Kind().String() != "object" {
		t.Errorf("kind mismatch: %s", obj.Kind())
	}
}
