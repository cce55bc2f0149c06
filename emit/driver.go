// Package emit implements the outer emission loop: it walks the length
// schedule, drains each length's active chain in bounded batches sized by
// the word-length distribution, and writes candidates to the output sink.
package emit

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/regginator/pp/bigint"
	"github.com/regginator/pp/buckets"
	"github.com/regginator/pp/chain"
	"github.com/regginator/pp/materialize"
	"github.com/regginator/pp/schedule"
)

// LengthState owns the sorted chain slice for one output length and the
// index of the currently-active chain. It is terminal once ElemsPos
// reaches len(Chains).
type LengthState struct {
	Length   int
	Chains   []*chain.Chain
	ElemsPos int
}

// Done reports whether every chain for this length has been fully drained.
func (ls *LengthState) Done() bool {
	return ls.ElemsPos >= len(ls.Chains)
}

// Active returns the currently-draining chain, or nil if Done.
func (ls *LengthState) Active() *chain.Chain {
	if ls.Done() {
		return nil
	}
	return ls.Chains[ls.ElemsPos]
}

// Config bundles the parameters that shape a run, mirroring the CLI flags
// of the reference generator.
type Config struct {
	PwMin       int
	PwMax       int
	ElemCntMin  int
	ElemCntMax  int
	UseObserved bool // --wl-dist-len
	Skip        *bigint.Int
	Limit       *bigint.Int // nil or zero means unlimited
}

// Driver walks the length schedule and emits candidates to a sink.
type Driver struct {
	bs     *buckets.Set
	order  []int
	states map[int]*LengthState

	skip  *bigint.Int
	limit *bigint.Int

	// KeyspaceInitial is the total keyspace before any --limit truncation.
	KeyspaceInitial *bigint.Int

	// totalKsCnt is the driver's stop condition: KeyspaceInitial, or
	// skip+limit when --limit was given (see Validate).
	totalKsCnt *bigint.Int
	totalKsPos *bigint.Int

	distFor func(length int) uint64
}

// New builds the chain set for every length in [cfg.PwMin, cfg.PwMax],
// computes each chain's keyspace, sorts chains within a length ascending
// by keyspace, and builds the length schedule. It does not validate
// skip/limit against the keyspace; call Validate for that.
func New(bs *buckets.Set, cfg Config) (*Driver, error) {
	if cfg.PwMin < 1 {
		return nil, fmt.Errorf("pw-min must be >= 1")
	}
	if cfg.PwMax < cfg.PwMin {
		return nil, fmt.Errorf("pw-max must be >= pw-min")
	}
	if cfg.PwMax > buckets.MaxLen {
		return nil, fmt.Errorf("pw-max must be <= %d", buckets.MaxLen)
	}
	if cfg.ElemCntMin < 1 {
		return nil, fmt.Errorf("elem-cnt-min must be >= 1")
	}
	if cfg.ElemCntMax < cfg.ElemCntMin {
		return nil, fmt.Errorf("elem-cnt-max must be >= elem-cnt-min")
	}

	distFor := func(length int) uint64 {
		return schedule.WordlenDist(length, uint64(bs.Len(length)), cfg.UseObserved)
	}

	states := make(map[int]*LengthState, cfg.PwMax-cfg.PwMin+1)
	total := bigint.New(0)

	for l := cfg.PwMin; l <= cfg.PwMax; l++ {
		chains := chain.Enumerate(l, bs, cfg.ElemCntMin, cfg.ElemCntMax)
		for _, c := range chains {
			chain.ComputeKeyspace(c, bs)
			total.Add(c.KsCnt)
		}
		chain.SortByKeyspace(chains)

		states[l] = &LengthState{Length: l, Chains: chains}
	}

	order := schedule.Order(cfg.PwMin, cfg.PwMax, distFor)

	skip := cfg.Skip
	if skip == nil {
		skip = bigint.New(0)
	}
	limit := cfg.Limit
	if limit == nil {
		limit = bigint.New(0)
	}

	return &Driver{
		bs:              bs,
		order:           order,
		states:          states,
		skip:            skip,
		limit:           limit,
		KeyspaceInitial: total,
		totalKsCnt:      total.Clone(),
		totalKsPos:      bigint.New(0),
		distFor:         distFor,
	}, nil
}

// Validate checks skip and limit against the initial keyspace and, if a
// limit was given, truncates the driver's stop condition to skip+limit.
// Call this once after New and before Run.
func (d *Driver) Validate() error {
	zero := bigint.New(0)

	if d.skip.Cmp(zero) > 0 && d.skip.Cmp(d.KeyspaceInitial) > 0 {
		return fmt.Errorf("skip (%s) is larger than the total keyspace (%s)", d.skip, d.KeyspaceInitial)
	}
	if d.limit.Cmp(zero) > 0 {
		if d.limit.Cmp(d.KeyspaceInitial) > 0 {
			return fmt.Errorf("limit (%s) is larger than the total keyspace (%s)", d.limit, d.KeyspaceInitial)
		}
		sum := d.skip.Clone().Add(d.limit)
		if sum.Cmp(d.KeyspaceInitial) > 0 {
			return fmt.Errorf("skip+limit (%s) exceeds the total keyspace (%s)", sum, d.KeyspaceInitial)
		}
		d.totalKsCnt = sum
	}
	return nil
}

// TotalKeyspace returns the driver's stop condition, i.e. KeyspaceInitial
// unless a limit truncated it (see Validate).
func (d *Driver) TotalKeyspace() *bigint.Int {
	return d.totalKsCnt.Clone()
}

// Run walks the schedule until totalKsPos reaches the (possibly
// limit-truncated) total keyspace, writing one candidate plus a trailing
// LF per position at or beyond skip. ctx is checked once per outer-loop
// pass, not per candidate; the standalone CLI never cancels its own
// context, but an embedding caller may.
func (d *Driver) Run(ctx context.Context, w io.Writer) error {
	buf := newBufWriter(w)

	for d.totalKsPos.Cmp(d.totalKsCnt) < 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, l := range d.order {
			ls := d.states[l]
			if ls.Done() {
				continue
			}

			if err := d.drainBatch(ls, buf); err != nil {
				return err
			}

			if d.totalKsPos.Cmp(d.totalKsCnt) >= 0 {
				return buf.Flush()
			}
		}
	}

	return buf.Flush()
}

// drainBatch runs one bounded batch against the length's active chain: it
// caps the batch by the chain's remaining keyspace, the length's
// word-length-distribution weight, and the global remaining count, then
// advances the chain's cursor (and the length's active chain, once
// exhausted) by however much it drained.
func (d *Driver) drainBatch(ls *LengthState, buf *bufio.Writer) error {
	c := ls.Active()

	remaining := c.KsCnt.Clone().Sub(c.KsPos)
	totalRemaining := d.totalKsCnt.Clone().Sub(d.totalKsPos)
	distVal := bigint.New(d.distFor(ls.Length))

	iterMaxBig := bigint.Min(bigint.Min(remaining, distVal), totalRemaining)
	if !iterMaxBig.FitsUint64() {
		return fmt.Errorf("emit: batch bound unexpectedly exceeds 64 bits")
	}
	iterMax := iterMaxBig.Uint64()

	pos := c.KsPos.Clone()
	for j := uint64(0); j < iterMax; j++ {
		if d.totalKsPos.Cmp(d.skip) >= 0 {
			cand := materialize.Build(c, pos, d.bs)
			if _, err := buf.Write(cand); err != nil {
				return err
			}
			if err := buf.WriteByte(lineTerm); err != nil {
				return err
			}
		}

		pos.AddUint64(1)
		d.totalKsPos.AddUint64(1)
	}

	if err := buf.Flush(); err != nil {
		return err
	}

	c.KsPos.AddUint64(iterMax)
	if c.KsPos.Cmp(c.KsCnt) >= 0 {
		c.KsPos = bigint.New(0)
		ls.ElemsPos++
	}

	return nil
}
