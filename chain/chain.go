// Package chain enumerates the length-chains ("elements") a candidate
// length decomposes into, and tracks each chain's keyspace and emission
// cursor.
package chain

import (
	"sort"

	"github.com/regginator/pp/bigint"
	"github.com/regginator/pp/buckets"
)

// Chain is one ordered composition of an output length into part-lengths,
// together with its keyspace and cursor. Parts is immutable once built;
// KsPos advances monotonically from 0 to KsCnt; the emission driver resets
// it to 0 once the chain is drained.
type Chain struct {
	Parts []int
	KsCnt *bigint.Int
	KsPos *bigint.Int
}

// K returns the number of parts (the chain's element count).
func (c *Chain) K() int {
	return len(c.Parts)
}

// Done reports whether the chain's cursor has reached its keyspace.
func (c *Chain) Done() bool {
	return c.KsPos.Cmp(c.KsCnt) >= 0
}

// Enumerate returns every admitted chain for output length L: every
// composition of L into parts p1..pk with 1 <= pi <= buckets.MaxLen,
// elemCntMin <= k <= elemCntMax, and every part's bucket non-empty.
//
// Compositions are generated by walking i in [0, 2^(L-1)) and reading bits
// low-to-high: a 1-bit closes the current part and starts a new one, a
// 0-bit extends the current part. This produces every composition of L
// exactly once, in a fixed, reproducible order, with no recursion.
func Enumerate(length int, bs *buckets.Set, elemCntMin, elemCntMax int) []*Chain {
	if length < 1 || length > buckets.MaxLen {
		return nil
	}
	if elemCntMax > length {
		elemCntMax = length
	}

	var chains []*Chain

	total := uint64(1) << uint(length-1)
	if length == 0 {
		total = 1
	}

	for i := uint64(0); i < total; i++ {
		parts := decomposeBits(i, length)

		k := len(parts)
		if k < elemCntMin || k > elemCntMax {
			continue
		}

		admitted := true
		for _, p := range parts {
			if bs.Empty(p) {
				admitted = false
				break
			}
		}
		if !admitted {
			continue
		}

		chains = append(chains, &Chain{
			Parts: parts,
			KsPos: bigint.New(0),
		})
	}

	return chains
}

// decomposeBits turns bit pattern i (length-1 bits significant) into the
// composition of length it encodes: reading bits low to high, a 1-bit
// closes the current part and starts a new one, a 0-bit extends it.
func decomposeBits(i uint64, length int) []int {
	parts := make([]int, 0, length)

	acc := 1
	for b := 0; b < length-1; b++ {
		if (i>>uint(b))&1 == 1 {
			parts = append(parts, acc)
			acc = 1
		} else {
			acc++
		}
	}
	parts = append(parts, acc)

	return parts
}

// ComputeKeyspace sets c.KsCnt to the product of the bucket sizes of c's
// parts, in chain order.
func ComputeKeyspace(c *Chain, bs *buckets.Set) {
	ks := bigint.New(1)
	for _, p := range c.Parts {
		ks.MulSmall(uint64(bs.Len(p)))
	}
	c.KsCnt = ks
}

// SortByKeyspace sorts chains ascending by KsCnt in place. Ties are broken
// by the chains' relative enumeration order (sort.SliceStable), so the
// first composition encountered for a given keyspace size emits first.
func SortByKeyspace(chains []*Chain) {
	sort.SliceStable(chains, func(i, j int) bool {
		return chains[i].KsCnt.Cmp(chains[j].KsCnt) < 0
	})
}
