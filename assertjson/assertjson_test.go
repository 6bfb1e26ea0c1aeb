package assertjson

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/qri-io/jsondiff"
	"github.com/stretchr/testify/assert"
)

// mockT records failures instead of failing the enclosing test
type mockT struct {
	errors []string
	failed bool
}

func (m *mockT) Errorf(format string, args ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}

func (m *mockT) FailNow() { m.failed = true }

func (m *mockT) Helper() {}

func decode(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestEqual(t *testing.T) {
	m := &mockT{}
	assert.True(t, Equal(m, decode(t, `{"a":[1,2]}`), decode(t, `{"a":[1,2]}`)))
	assert.Empty(t, m.errors)

	assert.False(t, Equal(m, decode(t, `{"a":[1,2]}`), decode(t, `{"a":[1]}`)))
	if assert.Len(t, m.errors, 1) {
		assert.Contains(t, m.errors[0], "json values differ")
		assert.Contains(t, m.errors[0], `json atom at path ".a[1]" is missing from rhs`)
	}
}

func TestIncludes(t *testing.T) {
	type user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	m := &mockT{}
	assert.True(t, Includes(m, user{ID: 1, Name: "b5"}, map[string]interface{}{"id": 1}))
	assert.Empty(t, m.errors)

	assert.False(t, Includes(m, user{ID: 1, Name: "b5"}, map[string]interface{}{"id": 2}))
	if assert.Len(t, m.errors, 1) {
		assert.Contains(t, m.errors[0], `json atoms at path ".id" are not equal:`)
		assert.Contains(t, m.errors[0], "expected:")
	}
}

func TestContains(t *testing.T) {
	m := &mockT{}
	assert.True(t, Contains(m, []interface{}{1, 2, 3}, []interface{}{3, 1}))
	assert.False(t, Contains(m, []interface{}{1, 2, 3}, []interface{}{1, 1}))
	if assert.Len(t, m.errors, 1) {
		assert.Contains(t, m.errors[0], "expected elements with no match in actual: [1]")
	}
}

func TestOptionsPassThrough(t *testing.T) {
	m := &mockT{}
	assert.False(t, Equal(m, 1, 1.0))
	assert.True(t, Equal(m, 1, 1.0, jsondiff.OptionAssumeFloat()))
}

func TestConversionFailure(t *testing.T) {
	m := &mockT{}
	assert.False(t, Equal(m, math.Inf(1), 1))
	if assert.Len(t, m.errors, 1) {
		assert.Contains(t, m.errors[0], "could not build json tree for lhs")
		assert.Contains(t, m.errors[0], jsondiff.ErrUnrepresentable.Error())
		assert.NotContains(t, m.errors[0], "json values differ")
	}

	m = &mockT{}
	assert.False(t, Includes(m, 1, make(chan int)))
	if assert.Len(t, m.errors, 1) {
		assert.Contains(t, m.errors[0], "could not build json tree for expected")
		assert.Contains(t, m.errors[0], "chan int")
	}
}

func TestRequire(t *testing.T) {
	m := &mockT{}
	RequireEqual(m, 1, 1)
	assert.False(t, m.failed)

	RequireEqual(m, 1, 2)
	assert.True(t, m.failed)

	m = &mockT{}
	RequireIncludes(m, map[string]interface{}{"a": 1, "b": 2}, map[string]interface{}{"a": 1})
	assert.False(t, m.failed)

	RequireContains(m, []interface{}{"x"}, []interface{}{"y"})
	assert.True(t, m.failed)
}
