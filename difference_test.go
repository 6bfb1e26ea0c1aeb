package jsondiff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDifferenceJSON(t *testing.T) {
	diffs := Differences{
		{Type: DTNotEqual, Path: NewPath(IndexAddr(2)), Left: Int(4), Right: Int(3)},
		{Type: DTMissingFromLeft, Path: NewPath(StringAddr("b")), Right: Object(map[string]Value{"c": Bool(false)})},
		{Type: DTMissingFromRight, Path: NewPath(StringAddr("a"), IndexAddr(0)), Left: Float(1)},
		{Type: DTNotEqual, Path: Path{}, Left: String("x"), Right: Null()},
	}

	data, err := json.Marshal(diffs)
	if err != nil {
		t.Fatal(err)
	}
	expect := `[["!=","[2]",4,3],["-l",".b",{"c":false}],["-r",".a[0]",1.0],["!=","(root)","x",null]]`
	if string(data) != expect {
		t.Errorf("json mismatch.\nwant: %s\ngot:  %s", expect, data)
	}
}

func TestDifferencesPaths(t *testing.T) {
	diffs := Compare(mustValue(`{"a":[1,2],"b":{"c":true}}`), mustValue(`{"a":[1],"b":{"c":false},"d":null}`))
	expect := []string{".a[1]", ".b.c", ".d"}
	if diff := cmp.Diff(expect, diffs.Paths()); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}
