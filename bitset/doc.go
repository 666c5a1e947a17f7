// Package bitset provides Set64, a set of small integers in [0, 64) packed
// into a single machine word.
//
// What
//
//   - Contains, Insert, Remove, Len, IsEmpty and Difference run in O(1).
//   - AllSubsets enumerates every subset of a set exactly once, including the
//     empty set and the set itself (2^k results for a set of size k).
//   - Set64 is a plain value type: equality and hashing are by bit pattern,
//     so it can be used directly as a Go map key.
//
// Why
//
//	The activation search tracks "which resources are still closed" at every
//	search state. Packing that set into one word keeps state keys small and
//	comparable, and makes the two-agent pairing a matter of enumerating
//	submasks of a complement.
//
// Contract
//
//	Indices outside [0, 64) are a programming error: Insert, Remove and
//	Contains panic on them. There is no runtime error path.
//
// Usage
//
//	s := bitset.Of(0, 3, 5)
//	s.Remove(3)
//	rest := bitset.Full(6).Difference(s) // {1 2 3 4}
//	subsets := rest.AllSubsets(nil)      // 16 subsets
package bitset
