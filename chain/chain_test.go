package chain_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/regginator/pp/buckets"
	"github.com/regginator/pp/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadBuckets(t *testing.T, words string) *buckets.Set {
	t.Helper()
	s, err := buckets.Load(strings.NewReader(words))
	require.NoError(t, err)
	return s
}

func partsOf(chains []*chain.Chain) [][]int {
	out := make([][]int, len(chains))
	for i, c := range chains {
		out[i] = c.Parts
	}
	return out
}

func TestEnumerateSingleLetterLengthOne(t *testing.T) {
	bs := loadBuckets(t, "a\n")
	chains := chain.Enumerate(1, bs, 1, 8)

	require.Len(t, chains, 1)
	assert.Equal(t, []int{1}, chains[0].Parts)
}

func TestEnumerateTwoOneLetterWordsLengthTwo(t *testing.T) {
	bs := loadBuckets(t, "a\nb\n")
	chains := chain.Enumerate(2, bs, 2, 8)

	require.Len(t, chains, 1)
	assert.Equal(t, []int{1, 1}, chains[0].Parts)
}

func TestEnumerateMixedLengths(t *testing.T) {
	bs := loadBuckets(t, "a\nbc\n")
	chains := chain.Enumerate(2, bs, 1, 8)

	require.Len(t, chains, 2)
	got := partsOf(chains)
	sort.Slice(got, func(i, j int) bool { return len(got[i]) < len(got[j]) })
	assert.Equal(t, [][]int{{2}, {1, 1}}, got)
}

func TestEnumerateDropsEmptyBucketCompositions(t *testing.T) {
	// Only a 1-letter word is available; length 3 can only be formed as
	// (1,1,1), never (3), (2,1), or (1,2) since buckets for 2 and 3 are empty.
	bs := loadBuckets(t, "a\n")
	chains := chain.Enumerate(3, bs, 1, 8)

	require.Len(t, chains, 1)
	assert.Equal(t, []int{1, 1, 1}, chains[0].Parts)
}

func TestEnumerateRespectsElemCntBounds(t *testing.T) {
	bs := loadBuckets(t, "a\nbb\n")
	chains := chain.Enumerate(2, bs, 1, 1)

	require.Len(t, chains, 1)
	assert.Equal(t, []int{2}, chains[0].Parts)
}

func TestEnumerationCoverageProperty(t *testing.T) {
	// Every composition of 4 should appear exactly once when every bucket
	// from 1 to 4 is populated and the elem-count window [1, 4] allows every k.
	bs := loadBuckets(t, "a\nbb\nccc\ndddd\n")
	chains := chain.Enumerate(4, bs, 1, 4)

	want := [][]int{{4}, {1, 3}, {2, 2}, {1, 1, 2}, {3, 1}, {1, 2, 1}, {2, 1, 1}, {1, 1, 1, 1}}
	got := partsOf(chains)

	assert.ElementsMatch(t, want, got)
	assert.Len(t, got, 8) // 2^(4-1)
}

func TestComputeKeyspaceAndSort(t *testing.T) {
	bs := loadBuckets(t, "a\nb\ncc\n")
	chains := chain.Enumerate(2, bs, 1, 8)
	for _, c := range chains {
		chain.ComputeKeyspace(c, bs)
	}

	chain.SortByKeyspace(chains)

	// (2) has ks=1 (only "cc"); (1,1) has ks=4 (2*2).
	require.Len(t, chains, 2)
	assert.Equal(t, "1", chains[0].KsCnt.String())
	assert.Equal(t, "4", chains[1].KsCnt.String())
}
