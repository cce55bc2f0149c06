// Package bigint wraps math/big for the non-negative arbitrary-precision
// counters the PRINCE core uses for keyspace sizes, cursors, and the
// skip/limit bounds given on the command line.
package bigint

import (
	"fmt"
	"math/big"
)

// Int is a non-negative arbitrary-precision integer. The zero value is 0.
type Int struct {
	v big.Int
}

// New returns an Int set to n.
func New(n uint64) *Int {
	i := &Int{}
	i.v.SetUint64(n)
	return i
}

// Parse reads a base-10 non-negative integer from s.
func Parse(s string) (*Int, error) {
	i := &Int{}
	if _, ok := i.v.SetString(s, 10); !ok {
		return nil, fmt.Errorf("bigint: invalid base-10 value %q", s)
	}
	if i.v.Sign() < 0 {
		return nil, fmt.Errorf("bigint: negative value %q not allowed", s)
	}
	return i, nil
}

// Clone returns an independent copy of i.
func (i *Int) Clone() *Int {
	out := &Int{}
	out.v.Set(&i.v)
	return out
}

// Add sets i := i + other and returns i.
func (i *Int) Add(other *Int) *Int {
	i.v.Add(&i.v, &other.v)
	return i
}

// Sub sets i := i - other and returns i. Panics if the result would be
// negative; callers only subtract smaller-or-equal quantities.
func (i *Int) Sub(other *Int) *Int {
	if i.v.Cmp(&other.v) < 0 {
		panic("bigint: subtraction underflow")
	}
	i.v.Sub(&i.v, &other.v)
	return i
}

// AddUint64 sets i := i + n and returns i.
func (i *Int) AddUint64(n uint64) *Int {
	var t big.Int
	t.SetUint64(n)
	i.v.Add(&i.v, &t)
	return i
}

// MulSmall sets i := i * n and returns i.
func (i *Int) MulSmall(n uint64) *Int {
	var t big.Int
	t.SetUint64(n)
	i.v.Mul(&i.v, &t)
	return i
}

// DivModSmall divides i by n, returning the quotient as a new Int and the
// remainder as a uint64. i is unchanged.
func (i *Int) DivModSmall(n uint64) (q *Int, r uint64) {
	if n == 0 {
		panic("bigint: division by zero")
	}
	var qv, rv, nv big.Int
	nv.SetUint64(n)
	qv.DivMod(&i.v, &nv, &rv)
	return &Int{v: qv}, rv.Uint64()
}

// ModSmall returns i mod n without mutating i.
func (i *Int) ModSmall(n uint64) uint64 {
	_, r := i.DivModSmall(n)
	return r
}

// Cmp returns -1, 0, or +1 comparing i to other.
func (i *Int) Cmp(other *Int) int {
	return i.v.Cmp(&other.v)
}

// IsZero reports whether i == 0.
func (i *Int) IsZero() bool {
	return i.v.Sign() == 0
}

// FitsUint64 reports whether i's value fits in a uint64.
func (i *Int) FitsUint64() bool {
	return i.v.IsUint64()
}

// Uint64 returns i's value as a uint64. Behavior is undefined if
// FitsUint64 is false; callers must check first.
func (i *Int) Uint64() uint64 {
	return i.v.Uint64()
}

// String renders i in base 10.
func (i *Int) String() string {
	return i.v.String()
}

// Min returns the smaller of a and b. Neither argument is mutated.
func Min(a, b *Int) *Int {
	if a.v.Cmp(&b.v) <= 0 {
		return a.Clone()
	}
	return b.Clone()
}
