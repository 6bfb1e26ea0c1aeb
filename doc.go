// Package jsondiff compares JSON-shaped trees & reports every location where
// they disagree, with a path to each one. It's intended for test assertions
// that need to say more than "not equal"
//
// Trees are built from six kinds of value: null, bool, number, string, array &
// object. numbers keep track of whether they were written as integers or
// floats. Decoded go data can be converted with FromInterface:
//
//	map[string]interface{}
//	[]interface{}
//	string, json.Number, float64, int, bool, nil
//
// Comparison runs in one of three modes. Strict mode requires both trees to
// match exactly. Inclusive mode treats the right hand tree as the expected
// value: the left hand tree may carry extra object fields & trailing array
// elements. Contains mode is Inclusive, but arrays match as multisets, every
// expected element must pair off with a distinct actual element in any order.
// Numbers are compared strictly by default, OptionAssumeFloat makes 1 & 1.0
// equal
//
// Differences come back in a deterministic order, depth-first with object
// keys sorted, and render to messages like:
//
//	json atoms at path ".data.users[1].id" are not equal:
//	    expected:
//	        2
//	    actual:
//	        3
//
// the assertjson package wraps Compare for use in tests
package jsondiff
