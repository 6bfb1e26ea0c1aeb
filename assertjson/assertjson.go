// Package assertjson reports differences between JSON-shaped values as test
// failures, with a message naming every path that differs
package assertjson

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/qri-io/jsondiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// Equal asserts that lhs & rhs match exactly. both sides are converted with
// jsondiff.FromInterface, so they can be decoded json, go values that marshal
// to json, or jsondiff.Value
func Equal(t assert.TestingT, lhs, rhs interface{}, opts ...jsondiff.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, lhs, rhs, "lhs", "rhs", opts)
}

// Includes asserts that actual carries every field & array element of
// expected. actual may have more
func Includes(t assert.TestingT, actual, expected interface{}, opts ...jsondiff.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, actual, expected, "actual", "expected", withMode(opts, jsondiff.Inclusive))
}

// Contains asserts that actual includes expected, matching arrays as
// multisets in any order
func Contains(t assert.TestingT, actual, expected interface{}, opts ...jsondiff.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, actual, expected, "actual", "expected", withMode(opts, jsondiff.Contains))
}

// RequireEqual is Equal, stopping the test on failure
func RequireEqual(t require.TestingT, lhs, rhs interface{}, opts ...jsondiff.Option) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !Equal(t, lhs, rhs, opts...) {
		t.FailNow()
	}
}

// RequireIncludes is Includes, stopping the test on failure
func RequireIncludes(t require.TestingT, actual, expected interface{}, opts ...jsondiff.Option) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !Includes(t, actual, expected, opts...) {
		t.FailNow()
	}
}

// RequireContains is Contains, stopping the test on failure
func RequireContains(t require.TestingT, actual, expected interface{}, opts ...jsondiff.Option) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !Contains(t, actual, expected, opts...) {
		t.FailNow()
	}
}

func check(t assert.TestingT, lhs, rhs interface{}, lhsName, rhsName string, opts []jsondiff.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	l, ok := build(t, lhs, lhsName)
	if !ok {
		return false
	}
	r, ok := build(t, rhs, rhsName)
	if !ok {
		return false
	}

	diffs := jsondiff.Compare(l, r, opts...)
	if len(diffs) == 0 {
		return true
	}
	return assert.Fail(t, "json values differ:\n\n"+diffs.String())
}

func build(t assert.TestingT, v interface{}, name string) (jsondiff.Value, bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	val, err := jsondiff.FromInterface(v)
	if err != nil {
		assert.Fail(t, fmt.Sprintf("could not build json tree for %s", name), "%s\n%s", err, spew.Sdump(v))
		return jsondiff.Value{}, false
	}
	return val, true
}

func withMode(opts []jsondiff.Option, m jsondiff.CompareMode) []jsondiff.Option {
	all := make([]jsondiff.Option, 0, len(opts)+1)
	all = append(all, opts...)
	return append(all, jsondiff.OptionMode(m))
}
