package jsondiff

import (
	"math"
	"sort"
)

// Compare walks lhs & rhs in lock-step and returns every location where the
// two trees disagree under the configured semantics, depth-first & in key
// order. Compare never fails: an empty result means the trees match. It holds
// no shared state and is safe to call concurrently
func Compare(lhs, rhs Value, opts ...Option) Differences {
	cfg := NewConfig(opts...)
	c := &comparer{cfg: cfg, stats: cfg.Stats}
	return c.compare(lhs, rhs, Path{})
}

// Equal reports whether Compare would return no differences, stopping at the
// first difference found
func Equal(lhs, rhs Value, opts ...Option) bool {
	cfg := NewConfig(opts...)
	c := &comparer{cfg: cfg, stats: cfg.Stats, first: true}
	return len(c.compare(lhs, rhs, Path{})) == 0
}

// Includes compares actual against expected in Inclusive mode: every field
// & array element in expected must be present & match in actual, actual may
// carry more
func Includes(actual, expected Value, opts ...Option) Differences {
	return Compare(actual, expected, withMode(opts, Inclusive)...)
}

// ContainsAll reports whether contained embeds in container under Contains mode,
// where arrays match as multisets
func ContainsAll(container, contained Value, opts ...Option) bool {
	return Equal(container, contained, withMode(opts, Contains)...)
}

// withMode appends a mode option without touching the caller's slice
func withMode(opts []Option, m CompareMode) []Option {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	return append(all, OptionMode(m))
}

// comparer is a single comparison pass. config is copied in & never changes
type comparer struct {
	cfg   Config
	stats *Stats
	// stop at the first difference
	first bool
	// subtree signatures, shared with nested matchers. created by the first
	// containment check
	hashes *hasher
}

// task is a unit of work on the comparison stack: either a pair of values to
// compare, or a difference to emit once every task queued before it is done
type task struct {
	lhs, rhs Value
	path     Path
	emit     *Difference
}

// compare uses an explicit stack instead of recursion so input depth is
// bounded by memory, not goroutine stack size. children are pushed in reverse
// so they pop in order, which keeps output depth-first, left-to-right
func (c *comparer) compare(lhs, rhs Value, root Path) (diffs Differences) {
	stack := []task{{lhs: lhs, rhs: rhs, path: root}}
	var next []task

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.emit != nil {
			diffs = append(diffs, t.emit)
			c.stats.addDifference(t.emit)
			if c.first {
				return diffs
			}
			continue
		}

		next = c.step(t, next[:0])
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}
	return diffs
}

// step compares a single pair of values, appending any child comparisons &
// differences to out
func (c *comparer) step(t task, out []task) []task {
	c.stats.visit(1, 1)
	lhs, rhs := t.lhs, t.rhs

	if lhs.kind != rhs.kind {
		return append(out, c.notEqual(t))
	}

	switch lhs.kind {
	case KindNull:
		return out
	case KindBool:
		if lhs.b != rhs.b {
			return append(out, c.notEqual(t))
		}
	case KindString:
		if lhs.s != rhs.s {
			return append(out, c.notEqual(t))
		}
	case KindNumber:
		if !numbersEqual(lhs, rhs, c.cfg.Numeric) {
			return append(out, c.notEqual(t))
		}
	case KindArray:
		return c.arrays(t, out)
	case KindObject:
		return c.objects(t, out)
	}
	return out
}

func (c *comparer) arrays(t task, out []task) []task {
	l, r := t.lhs.arr, t.rhs.arr

	switch c.cfg.Mode {
	case Contains:
		if unmatched, ok := c.contains(l, r); !ok {
			d := c.notEqual(t)
			d.emit.Unmatched = unmatched
			return append(out, d)
		}
	case Inclusive:
		for i, rv := range r {
			p := t.path.Index(i)
			if i < len(l) {
				out = append(out, task{lhs: l[i], rhs: rv, path: p})
			} else {
				out = append(out, c.missingFromLeft(p, rv))
			}
		}
	default:
		n := len(l)
		if len(r) > n {
			n = len(r)
		}
		for i := 0; i < n; i++ {
			p := t.path.Index(i)
			switch {
			case i < len(l) && i < len(r):
				out = append(out, task{lhs: l[i], rhs: r[i], path: p})
			case i < len(l):
				out = append(out, c.missingFromRight(p, l[i]))
			default:
				out = append(out, c.missingFromLeft(p, r[i]))
			}
		}
	}
	return out
}

func (c *comparer) objects(t task, out []task) []task {
	l, r := t.lhs.obj, t.rhs.obj

	if c.cfg.Mode != Strict {
		// only keys of the reference side matter, extra left hand keys are
		// ignored
		for _, key := range sortedKeys(r) {
			p := t.path.Field(key)
			if lv, ok := l[key]; ok {
				out = append(out, task{lhs: lv, rhs: r[key], path: p})
			} else {
				out = append(out, c.missingFromLeft(p, r[key]))
			}
		}
		return out
	}

	for _, key := range unionKeys(l, r) {
		p := t.path.Field(key)
		lv, lok := l[key]
		rv, rok := r[key]
		switch {
		case lok && rok:
			out = append(out, task{lhs: lv, rhs: rv, path: p})
		case lok:
			out = append(out, c.missingFromRight(p, lv))
		default:
			out = append(out, c.missingFromLeft(p, rv))
		}
	}
	return out
}

func (c *comparer) notEqual(t task) task {
	return task{emit: &Difference{
		Type:  DTNotEqual,
		Path:  t.path,
		Left:  t.lhs,
		Right: t.rhs,
		Mode:  c.cfg.Mode,
	}}
}

func (c *comparer) missingFromLeft(p Path, rhs Value) task {
	c.stats.visit(0, 1)
	return task{emit: &Difference{
		Type:  DTMissingFromLeft,
		Path:  p,
		Right: rhs,
		Mode:  c.cfg.Mode,
	}}
}

func (c *comparer) missingFromRight(p Path, lhs Value) task {
	c.stats.visit(1, 0)
	return task{emit: &Difference{
		Type: DTMissingFromRight,
		Path: p,
		Left: lhs,
		Mode: c.cfg.Mode,
	}}
}

func numbersEqual(a, b Value, m NumericMode) bool {
	if m == AssumeFloat {
		return floatsEqual(a.float(), b.float())
	}
	if a.num != b.num {
		return false
	}
	switch a.num {
	case numInt:
		return a.i == b.i
	case numUint:
		return a.u == b.u
	default:
		return floatsEqual(a.f, b.f)
	}
}

// floatsEqual treats NaN as equal to itself so every value equals itself
func floatsEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func unionKeys(a, b map[string]Value) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
