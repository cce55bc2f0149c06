// Package materialize turns a chain and an offset within that chain's
// keyspace into a concrete candidate byte string.
package materialize

import (
	"github.com/regginator/pp/bigint"
	"github.com/regginator/pp/buckets"
	"github.com/regginator/pp/chain"
)

// Build treats v as a mixed-radix integer whose radices are the bucket
// sizes of c's parts in chain order, and returns the concatenation of the
// indexed words. The first part cycles fastest: incrementing v by one
// changes the head of the candidate while the tail stays fixed, which is
// what gives adjacent candidates their shared-tail locality.
//
// v is consumed by value; the caller's v is left untouched.
func Build(c *chain.Chain, v *bigint.Int, bs *buckets.Set) []byte {
	length := 0
	for _, p := range c.Parts {
		length += p
	}

	out := make([]byte, 0, length)
	cur := v.Clone()

	for _, p := range c.Parts {
		bucket := bs.Bucket(p)
		q, idx := cur.DivModSmall(uint64(len(bucket)))
		out = append(out, bucket[idx]...)
		cur = q
	}

	return out
}
