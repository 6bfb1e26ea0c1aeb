package jsondiff

import (
	"strconv"
	"strings"
)

// Addr is a single step of a Path: the key of an object field or the index
// of an array element
type Addr interface {
	// Value returns the underlying key (string) or index (int)
	Value() interface{}
	// String renders the address as a path component, ".name" or "[i]"
	String() string
}

// StringAddr is the address of an object field
type StringAddr string

// Value implements the Addr interface
func (a StringAddr) Value() interface{} { return string(a) }

// String implements the Addr interface
func (a StringAddr) String() string { return "." + string(a) }

// IndexAddr is the address of an array element
type IndexAddr int

// Value implements the Addr interface
func (a IndexAddr) Value() interface{} { return int(a) }

// String implements the Addr interface
func (a IndexAddr) String() string { return "[" + strconv.Itoa(int(a)) + "]" }

// RootPath is how the empty path renders
const RootPath = "(root)"

// Path is a location in a tree, built up one Addr at a time while descending.
// Paths are persistent: Append never modifies the receiver, and paths that
// share a prefix share its storage. The zero Path is the root
type Path struct {
	tip *pathNode
}

type pathNode struct {
	addr   Addr
	parent *pathNode
	depth  int
}

// NewPath constructs a path from a list of addresses in descent order
func NewPath(addrs ...Addr) Path {
	p := Path{}
	for _, a := range addrs {
		p = p.Append(a)
	}
	return p
}

// Append returns a new path one step deeper than p
func (p Path) Append(a Addr) Path {
	depth := 1
	if p.tip != nil {
		depth = p.tip.depth + 1
	}
	return Path{tip: &pathNode{addr: a, parent: p.tip, depth: depth}}
}

// Field is shorthand for p.Append(StringAddr(name))
func (p Path) Field(name string) Path { return p.Append(StringAddr(name)) }

// Index is shorthand for p.Append(IndexAddr(i))
func (p Path) Index(i int) Path { return p.Append(IndexAddr(i)) }

// Len is the number of addresses in p
func (p Path) Len() int {
	if p.tip == nil {
		return 0
	}
	return p.tip.depth
}

// IsRoot is true for the empty path
func (p Path) IsRoot() bool { return p.tip == nil }

// Addrs lists the addresses of p in descent order
func (p Path) Addrs() []Addr {
	addrs := make([]Addr, p.Len())
	for n := p.tip; n != nil; n = n.parent {
		addrs[n.depth-1] = n.addr
	}
	return addrs
}

// Equal reports whether two paths address the same location
func (p Path) Equal(o Path) bool {
	if p.Len() != o.Len() {
		return false
	}
	for a, b := p.tip, o.tip; a != nil; a, b = a.parent, b.parent {
		if a == b {
			return true
		}
		if a.addr != b.addr {
			return false
		}
	}
	return true
}

// String renders p as the concatenation of its components, eg:
// .data.users[1].id
// the root path renders as RootPath
func (p Path) String() string {
	if p.tip == nil {
		return RootPath
	}
	var b strings.Builder
	for _, a := range p.Addrs() {
		b.WriteString(a.String())
	}
	return b.String()
}

// MarshalText implements the encoding.TextMarshaler interface
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
