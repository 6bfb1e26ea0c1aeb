package jsondiff

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"reflect"
)

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash implementation if the value space is
// particularly large. default is 64-bit FNV 1 for fast, cheap hashing
var NewHash = func() hash.Hash {
	return fnv.New64()
}

// nodeKey identifies the backing storage of a non-empty array or object.
// values never mutate their storage, so equal keys mean equal subtrees
type nodeKey struct {
	kind Kind
	ptr  uintptr
	n    int
}

func keyOf(v Value) (nodeKey, bool) {
	switch v.kind {
	case KindArray:
		if len(v.arr) > 0 {
			return nodeKey{kind: KindArray, ptr: reflect.ValueOf(v.arr).Pointer(), n: len(v.arr)}, true
		}
	case KindObject:
		if len(v.obj) > 0 {
			return nodeKey{kind: KindObject, ptr: reflect.ValueOf(v.obj).Pointer(), n: len(v.obj)}, true
		}
	}
	return nodeKey{}, false
}

// hasher computes subtree signatures. a composite's digest is built from
// its children's digests, and every composite digest is kept, so nested
// containment checks hash each node once per comparison
type hasher struct {
	digests map[nodeKey][]byte
}

func newHasher() *hasher {
	return &hasher{digests: map[nodeKey][]byte{}}
}

// hashValue computes the signature of a single subtree
func hashValue(v Value) []byte {
	return newHasher().sum(v)
}

// sum returns the signature of v. two values that are structurally Equal
// always hash the same. children are visited post-order with an explicit
// stack
func (h *hasher) sum(root Value) []byte {
	type frame struct {
		v        Value
		keys     []string
		children [][]byte
	}

	var (
		stack  = []*frame{{v: root}}
		result []byte
	)
	deliver := func(d []byte) {
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			result = d
			return
		}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, d)
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		key, cacheable := keyOf(f.v)
		if !cacheable {
			deliver(digest(f.v, nil, nil))
			continue
		}
		if d, ok := h.digests[key]; ok {
			deliver(d)
			continue
		}

		if f.v.kind == KindObject && f.keys == nil {
			f.keys = sortedKeys(f.v.obj)
		}
		if n := len(f.children); n < f.v.Len() {
			var child Value
			if f.v.kind == KindArray {
				child = f.v.arr[n]
			} else {
				child = f.v.obj[f.keys[n]]
			}
			stack = append(stack, &frame{v: child})
			continue
		}

		d := digest(f.v, f.keys, f.children)
		h.digests[key] = d
		deliver(d)
	}
	return result
}

// digest hashes a single node. composites write their length, then each
// child digest, preceded by its key for objects
func digest(v Value, keys []string, children [][]byte) []byte {
	h := NewHash()
	var word [8]byte
	writeUint := func(u uint64) {
		binary.BigEndian.PutUint64(word[:], u)
		h.Write(word[:])
	}
	writeBytes := func(b []byte) {
		writeUint(uint64(len(b)))
		h.Write(b)
	}

	h.Write([]byte{byte(v.kind)})
	switch v.kind {
	case KindBool:
		if v.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case KindNumber:
		h.Write([]byte{byte(v.num)})
		switch v.num {
		case numInt:
			writeUint(uint64(v.i))
		case numUint:
			writeUint(v.u)
		default:
			writeUint(floatBits(v.f))
		}
	case KindString:
		writeBytes([]byte(v.s))
	case KindArray, KindObject:
		writeUint(uint64(len(children)))
		for i, c := range children {
			if keys != nil {
				writeBytes([]byte(keys[i]))
			}
			writeBytes(c)
		}
	}
	return h.Sum(nil)
}

// floatBits maps values that compare equal to the same bits
func floatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	case f == 0:
		return 0
	}
	return math.Float64bits(f)
}
