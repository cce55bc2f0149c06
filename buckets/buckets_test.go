package buckets_test

import (
	"strings"
	"testing"

	"github.com/regginator/pp/buckets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBasic(t *testing.T) {
	s, err := buckets.Load(strings.NewReader("a\nbb\nccc\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len(1))
	assert.Equal(t, 1, s.Len(2))
	assert.Equal(t, 1, s.Len(3))
	assert.Equal(t, [][]byte{[]byte("a")}, s.Bucket(1))
}

func TestLoadDropsOutOfRangeAndBlankLines(t *testing.T) {
	longLine := strings.Repeat("x", 17)
	s, err := buckets.Load(strings.NewReader("a\n" + longLine + "\n\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len(1))
	assert.True(t, s.Empty(17))
}

func TestLoadStripsCR(t *testing.T) {
	s, err := buckets.Load(strings.NewReader("ab\r\n"))
	require.NoError(t, err)

	require.Equal(t, 1, s.Len(2))
	assert.Equal(t, "ab", string(s.Bucket(2)[0]))
}

func TestLoadPreservesDuplicatesAndOrder(t *testing.T) {
	s, err := buckets.Load(strings.NewReader("aa\nbb\naa\n"))
	require.NoError(t, err)

	require.Equal(t, 3, s.Len(2))
	assert.Equal(t, "aa", string(s.Bucket(2)[0]))
	assert.Equal(t, "bb", string(s.Bucket(2)[1]))
	assert.Equal(t, "aa", string(s.Bucket(2)[2]))
}

func TestBucketOutOfRangeReturnsNil(t *testing.T) {
	s, err := buckets.Load(strings.NewReader("a\n"))
	require.NoError(t, err)

	assert.Nil(t, s.Bucket(0))
	assert.Nil(t, s.Bucket(buckets.MaxLen+1))
}
