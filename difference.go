package jsondiff

import (
	"encoding/json"
	"strings"
)

// DiffType names the kind of disagreement a Difference describes
type DiffType string

const (
	// DTNotEqual means both sides have a value at the path, and they disagree.
	// for mismatched kinds & failed array containment the values are the
	// whole subtrees at the path
	DTNotEqual = DiffType("!=")
	// DTMissingFromLeft means only the right hand side has a value at the path
	DTMissingFromLeft = DiffType("-l")
	// DTMissingFromRight means only the left hand side has a value at the path
	DTMissingFromRight = DiffType("-r")
)

// Difference is one irreconcilable location between two trees
type Difference struct {
	// the type of disagreement
	Type DiffType
	// Path is the location of the disagreement, from the root of both trees
	Path Path
	// Left is the left hand value at Path, null for DTMissingFromLeft
	Left Value
	// Right is the right hand value at Path, null for DTMissingFromRight
	Right Value
	// Mode is the compare mode that produced this difference, it decides how
	// sides are labelled when rendered
	Mode CompareMode
	// Unmatched lists indices of right hand array elements that found no
	// partner in a failed Contains comparison. nil when the right hand array
	// was longer than the left
	Unmatched []int
}

// MarshalJSON implements a custom JSON Marshaller, encoding differences as
// compact arrays:
//
//	["!=", path, left, right]
//	["-l", path, right]
//	["-r", path, left]
func (d *Difference) MarshalJSON() ([]byte, error) {
	v := []interface{}{d.Type, d.Path.String()}
	switch d.Type {
	case DTMissingFromLeft:
		v = append(v, d.Right)
	case DTMissingFromRight:
		v = append(v, d.Left)
	default:
		v = append(v, d.Left, d.Right)
	}
	return json.Marshal(v)
}

// Differences is a list of differences, in the order they were discovered
type Differences []*Difference

// String renders all differences, separated by blank lines
func (ds Differences) String() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = Render(d)
	}
	return strings.Join(msgs, "\n\n")
}

// Paths lists the rendered path of each difference
func (ds Differences) Paths() []string {
	paths := make([]string, len(ds))
	for i, d := range ds {
		paths[i] = d.Path.String()
	}
	return paths
}
