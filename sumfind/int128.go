package sumfind

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// int128 is a 128-bit signed integer. It holds sums and differences of a
// few int64 values exactly, so the search arithmetic can't overflow.
type int128 struct {
	hi int64
	lo uint64
}

func wide[T constraints.Signed](n T) int128 {
	x := int64(n)
	return int128{hi: x >> 63, lo: uint64(x)}
}

// narrow converts i to a T, reporting whether it fits.
func narrow[T constraints.Signed](i int128) (T, bool) {
	n := T(int64(i.lo))
	return n, wide(n) == i
}

// sub computes i - j.
func (i int128) sub(j int128) int128 {
	lo, borrow := bits.Sub64(i.lo, j.lo, 0)
	return int128{
		hi: i.hi - j.hi - int64(borrow),
		lo: lo,
	}
}

// cmp returns -1, 0, or +1 depending on whether i < j, i == j, or i > j.
func (i int128) cmp(j int128) int {
	switch {
	case i.hi < j.hi:
		return -1
	case i.hi > j.hi:
		return 1
	case i.lo < j.lo:
		return -1
	case i.lo > j.lo:
		return 1
	}
	return 0
}
