package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func Example() {
	// start with two slightly different json documents
	aJSON := []byte(`{
		"a": 100,
		"baz": {
			"a": {
				"d": "apples-and-oranges"
			}
		}
	}`)

	bJSON := []byte(`{
		"a": 99,
		"baz": {
			"a": {
				"d": "apples-and-oranges"
			},
			"e": "thirty-thousand-something-dogecoin"
		}
	}`)

	// decode the data into generic interfaces, keeping integers as integers
	decode := func(data []byte) Value {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			panic(err)
		}
		val, err := FromInterface(v)
		if err != nil {
			panic(err)
		}
		return val
	}

	// Compare produces one Difference per location the documents disagree
	diffs := Compare(decode(aJSON), decode(bJSON))

	// differences use a custom compact JSON Marshaller
	output, err := json.MarshalIndent(diffs, "", "  ")
	if err != nil {
		panic(err)
	}

	fmt.Println(string(output))
	// Output:
	// [
	//   [
	//     "!=",
	//     ".a",
	//     100,
	//     99
	//   ],
	//   [
	//     "-l",
	//     ".baz.e",
	//     "thirty-thousand-something-dogecoin"
	//   ]
	// ]
}

func ExampleIncludes() {
	actual, err := FromInterface(map[string]interface{}{
		"data": map[string]interface{}{
			"users": []interface{}{
				map[string]interface{}{"id": 1, "name": "b5"},
				map[string]interface{}{"id": 3, "name": "ramfox"},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	expected, err := FromInterface(map[string]interface{}{
		"data": map[string]interface{}{
			"users": []interface{}{
				map[string]interface{}{"id": 1},
				map[string]interface{}{"id": 2},
			},
		},
	})
	if err != nil {
		panic(err)
	}

	// extra fields in actual are ignored, only expected fields are checked
	fmt.Println(Includes(actual, expected))
	// Output:
	// json atoms at path ".data.users[1].id" are not equal:
	//     expected:
	//         2
	//     actual:
	//         3
}

func ExampleContainsAll() {
	fmt.Println(ContainsAll(
		Array(Int(1), Int(2), Int(3), Int(1), Int(4)),
		Array(Int(3), Int(1), Int(2), Int(1), Int(4)),
	))
	// each expected element needs its own match
	fmt.Println(ContainsAll(
		Array(Int(1), Int(2), Int(3)),
		Array(Int(2), Int(3), Int(1), Int(1)),
	))
	// Output:
	// true
	// false
}

func ExampleFormatPrettyStats() {
	stats := &Stats{}
	Compare(
		Array(String("a"), String("b")),
		Array(String("a"), String("c"), String("d")),
		OptionSetStats(stats),
	)
	fmt.Print(FormatPrettyStats(stats))
	// Output:
	// 2 differences. 1 not equal. 1 missing from left. 0 missing from right.
}
