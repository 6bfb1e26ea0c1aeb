package jsondiff

// Stats holds statistical metadata about a comparison
type Stats struct {
	Left  int `json:"leftNodes"`  // count of nodes visited in the left tree
	Right int `json:"rightNodes"` // count of nodes visited in the right tree

	NotEqual         int `json:"notEqual,omitempty"`         // number of unequal values
	MissingFromLeft  int `json:"missingFromLeft,omitempty"`  // number of values only on the right
	MissingFromRight int `json:"missingFromRight,omitempty"` // number of values only on the left

	Matchings    int `json:"matchings,omitempty"`    // number of array containment matchings run
	CompatChecks int `json:"compatChecks,omitempty"` // number of element pairs compared by matchings
}

// Differences returns the total count of differences
func (s Stats) Differences() int {
	return s.NotEqual + s.MissingFromLeft + s.MissingFromRight
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// stats methods accept a nil receiver so the engine doesn't need to check
// whether stats were requested

func (s *Stats) visit(left, right int) {
	if s == nil {
		return
	}
	s.Left += left
	s.Right += right
}

func (s *Stats) addDifference(d *Difference) {
	if s == nil {
		return
	}
	switch d.Type {
	case DTNotEqual:
		s.NotEqual++
	case DTMissingFromLeft:
		s.MissingFromLeft++
	case DTMissingFromRight:
		s.MissingFromRight++
	}
}

func (s *Stats) matching() {
	if s != nil {
		s.Matchings++
	}
}

func (s *Stats) compatCheck() {
	if s != nil {
		s.CompatChecks++
	}
}
