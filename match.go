package jsondiff

import "bytes"

// compatibility memo states
const (
	compatUnknown int8 = iota
	compatYes
	compatNo
)

// matcher decides whether every element of contained can be paired with a
// distinct, compatible element of container. it's a bipartite matching
// solved with augmenting paths, contained elements on one side, container
// elements on the other
type matcher struct {
	c         *comparer
	container []Value
	contained []Value

	// compat[i][j] memoises whether contained[i] is compatible with
	// container[j]
	compat [][]int8
	// owner[j] is the contained index currently matched to container[j], -1
	// when free
	owner []int
	// seen marks container elements visited by the current augmentation
	seen []bool

	// subtree hashes of the elements, computed on first use
	containerHashes [][]byte
	containedHashes [][]byte
}

// contains reports whether contained embeds into container as a multiset.
// when it doesn't, unmatched lists the contained indices left over by a
// maximum matching. a contained array longer than its container fails
// without matching, and reports no unmatched indices
func (c *comparer) contains(container, contained []Value) (unmatched []int, ok bool) {
	if len(contained) == 0 {
		return nil, true
	}
	if len(contained) > len(container) {
		return nil, false
	}

	c.stats.matching()
	if c.hashes == nil {
		c.hashes = newHasher()
	}
	m := &matcher{
		c:               c,
		container:       container,
		contained:       contained,
		compat:          make([][]int8, len(contained)),
		owner:           make([]int, len(container)),
		seen:            make([]bool, len(container)),
		containerHashes: make([][]byte, len(container)),
		containedHashes: make([][]byte, len(contained)),
	}
	for i := range m.compat {
		m.compat[i] = make([]int8, len(container))
	}
	for j := range m.owner {
		m.owner[j] = -1
	}

	for i := range contained {
		for j := range m.seen {
			m.seen[j] = false
		}
		if !m.augment(i) {
			unmatched = append(unmatched, i)
			if c.first {
				break
			}
		}
	}
	return unmatched, len(unmatched) == 0
}

// augment tries to find a container element for contained[i], reassigning
// earlier matches along an alternating path if needed
func (m *matcher) augment(i int) bool {
	for j := range m.container {
		if m.seen[j] || !m.compatible(i, j) {
			continue
		}
		m.seen[j] = true
		if m.owner[j] < 0 || m.augment(m.owner[j]) {
			m.owner[j] = i
			return true
		}
	}
	return false
}

// compatible reports whether comparing container[j] against contained[i]
// under the active config produces no differences
func (m *matcher) compatible(i, j int) bool {
	switch m.compat[i][j] {
	case compatYes:
		return true
	case compatNo:
		return false
	}

	m.c.stats.compatCheck()
	ok := m.identical(i, j)
	if !ok {
		sub := &comparer{cfg: m.c.cfg, first: true, hashes: m.c.hashes}
		ok = len(sub.compare(m.container[j], m.contained[i], Path{})) == 0
	}

	if ok {
		m.compat[i][j] = compatYes
	} else {
		m.compat[i][j] = compatNo
	}
	return ok
}

// identical is a fast path for subtrees that are structurally equal, which
// are compatible under every config
func (m *matcher) identical(i, j int) bool {
	if m.containedHashes[i] == nil {
		m.containedHashes[i] = m.c.hashes.sum(m.contained[i])
	}
	if m.containerHashes[j] == nil {
		m.containerHashes[j] = m.c.hashes.sum(m.container[j])
	}
	if !bytes.Equal(m.containedHashes[i], m.containerHashes[j]) {
		return false
	}
	strict := &comparer{first: true}
	return len(strict.compare(m.container[j], m.contained[i], Path{})) == 0
}
