// Package sumfind finds elements of a sorted multiset that sum to a target.
//
// All functions take the input slice sorted in ascending order; sorting is
// the caller's job so that repeated searches over the same data don't
// re-sort it. Each element is used at most once per result, so a value
// appears twice in a result only if it appears twice in the input.
package sumfind

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// FindPair finds a and b in s such that a + b + offset == target.
// s must be sorted in ascending order. The sum is exact: it is never
// taken modulo the range of T.
//
// The result is the pair with the smallest a (and a <= b).
// If no such pair exists, ok is false.
// The complexity is O(n log n) where n = len(s).
func FindPair[T constraints.Signed](s []T, target, offset T) (a, b T, ok bool) {
	mustBeSorted(s)
	return findPair(s, wide(target).sub(wide(offset)))
}

// FindTriple finds a, b, and c in s such that a + b + c == target.
// s must be sorted in ascending order.
//
// The result is the triple with the smallest a, then the smallest b;
// a <= b <= c. If no such triple exists, ok is false.
// The complexity is O(n² log n) where n = len(s).
func FindTriple[T constraints.Signed](s []T, target T) (a, b, c T, ok bool) {
	mustBeSorted(s)
	limit := wide(target)
	for i, x := range s {
		if b, c, ok := findPair(s[i+1:], limit.sub(wide(x))); ok {
			return x, b, c, true
		}
	}
	return 0, 0, 0, false
}

// Find finds k elements of s which sum to target and returns them in
// ascending order. s must be sorted in ascending order.
//
// For k == 2 and k == 3, Find returns the same values as FindPair and
// FindTriple. If k < 1 or there is no solution, ok is false.
func Find[T constraints.Signed](s []T, target T, k int) (summands []T, ok bool) {
	mustBeSorted(s)
	if k < 1 {
		return nil, false
	}
	summands = make([]T, 0, k)
	return find(s, wide(target), k, summands)
}

// Product returns the product of vs. The product of no values is 1.
func Product[T constraints.Integer](vs ...T) T {
	p := T(1)
	for _, v := range vs {
		p *= v
	}
	return p
}

// find appends to acc k elements of s summing to limit.
func find[T constraints.Signed](s []T, limit int128, k int, acc []T) ([]T, bool) {
	switch k {
	case 1:
		n, ok := narrow[T](limit)
		if !ok {
			return nil, false
		}
		if _, found := slices.BinarySearch(s, n); found {
			return append(acc, n), true
		}
		return nil, false
	case 2:
		if a, b, ok := findPair(s, limit); ok {
			return append(acc, a, b), true
		}
		return nil, false
	}
	for i := 0; i+k <= len(s); i++ {
		if r, ok := find(s[i+1:], limit.sub(wide(s[i])), k-1, append(acc, s[i])); ok {
			return r, true
		}
	}
	return nil, false
}

// findPair is FindPair without the sortedness check, with the offset
// already folded into limit.
func findPair[T constraints.Signed](s []T, limit int128) (a, b T, ok bool) {
	if len(s) < 2 {
		return 0, 0, false
	}
	// Any complement is at most limit - s[0], so nothing
	// past that can take part in a match.
	maxComp := limit.sub(wide(s[0]))
	end := sort.Search(len(s), func(i int) bool { return wide(s[i]).cmp(maxComp) > 0 })
	s = s[:end]
	for i, x := range s {
		diff := limit.sub(wide(x))
		if diff.cmp(wide(x)) < 0 {
			// b >= a from here on.
			break
		}
		y, ok := narrow[T](diff)
		if !ok {
			// Above the range of T; a larger x may bring it back.
			continue
		}
		if _, found := slices.BinarySearch(s[i+1:], y); found {
			return x, y, true
		}
	}
	return 0, 0, false
}

func mustBeSorted[T constraints.Signed](s []T) {
	if !slices.IsSorted(s) {
		panic("sumfind: input is not sorted")
	}
}
