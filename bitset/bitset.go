package bitset

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// MaxSize is the number of distinct elements a Set64 can hold.
const MaxSize = 64

// Set64 is a set of integers in [0, MaxSize). The zero value is the empty set.
type Set64 uint64

// Of returns the set holding exactly the given elements.
func Of(elems ...int) Set64 {
	var s Set64
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// Full returns the set {0, 1, ..., k-1}. It panics if k is outside [0, MaxSize].
func Full(k int) Set64 {
	if k < 0 || k > MaxSize {
		panic(fmt.Sprintf("bitset: size %d out of range [0,%d]", k, MaxSize))
	}
	if k == MaxSize {
		return ^Set64(0)
	}
	return Set64(uint64(1)<<uint(k) - 1)
}

// mask returns the single-bit word for i, panicking outside [0, MaxSize).
func mask(i int) Set64 {
	if i < 0 || i >= MaxSize {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, MaxSize))
	}
	return Set64(1) << uint(i)
}

// Contains reports whether i is a member of s.
func (s Set64) Contains(i int) bool {
	return s&mask(i) != 0
}

// Insert adds i to s.
func (s *Set64) Insert(i int) {
	*s |= mask(i)
}

// Remove deletes i from s and reports whether it was present.
func (s *Set64) Remove(i int) bool {
	m := mask(i)
	present := *s&m != 0
	*s &^= m
	return present
}

// IsEmpty reports whether s has no members.
func (s Set64) IsEmpty() bool {
	return s == 0
}

// Len returns the number of members (population count).
func (s Set64) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Difference returns the members of s that are not in other.
func (s Set64) Difference(other Set64) Set64 {
	return s &^ other
}

// Union returns the members of either s or other.
func (s Set64) Union(other Set64) Set64 {
	return s | other
}

// AllSubsets appends every subset of s to out and returns the extended slice.
// Exactly 2^s.Len() subsets are appended, the empty set first.
//
// The lowest member is peeled off, the subsets of the remainder are
// enumerated, and the appended block is then duplicated with the peeled
// member added back. Callers enumerating many sets should reuse out[:0].
func (s Set64) AllSubsets(out []Set64) []Set64 {
	if s == 0 {
		return append(out, 0)
	}
	low := bits.TrailingZeros64(uint64(s))
	m := Set64(1) << uint(low)

	start := len(out)
	out = (s &^ m).AllSubsets(out)
	end := len(out)
	for i := start; i < end; i++ {
		out = append(out, out[i]|m)
	}
	return out
}

// Elements yields the members of s in ascending order.
func (s Set64) Elements() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w := uint64(s); w != 0; w &= w - 1 {
			if !yield(bits.TrailingZeros64(w)) {
				return
			}
		}
	}
}

// String renders s as "{a b c}".
func (s Set64) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for e := range s.Elements() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(e))
	}
	sb.WriteByte('}')
	return sb.String()
}
